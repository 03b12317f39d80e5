// Package gemini adapts the Gemini API to the chat advisor contract.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-3-flash-preview"

// Config for the adapter. BaseURL is only set in tests.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Advisor answers shopper questions through Gemini's GenerateContent.
type Advisor struct {
	client *genai.Client
	model  string
}

// NewAdvisor creates the client. An empty API key is an error; callers that
// run without a key should leave the advisor nil instead.
func NewAdvisor(ctx context.Context, cfg Config) (*Advisor, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Advisor{client: client, model: model}, nil
}

func (a *Advisor) Model() string {
	return a.model
}

// Advise sends one query with the system instruction and returns the text of
// the first candidate. A response without text yields "" and a nil error.
func (a *Advisor) Advise(ctx context.Context, systemInstruction, query string) (string, error) {
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(query), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return resp.Text(), nil
}
