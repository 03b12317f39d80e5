package domain

import (
	"slices"
	"strings"
	"sync"
	"time"
)

// Conversation is the append-only chat transcript of one session plus the
// "input suspended" flag that is raised while the advisor is answering.
// It is safe for concurrent use.
type Conversation struct {
	mu       sync.Mutex
	messages []Message
	pending  bool
}

// NewConversation starts a transcript with the advisor greeting.
func NewConversation(now time.Time) *Conversation {
	return &Conversation{
		messages: []Message{{Role: RoleModel, Text: Greeting, Timestamp: now}},
	}
}

// Messages returns a copy of the transcript in order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.messages)
}

func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// Pending reports whether a query is waiting for its answer.
func (c *Conversation) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Ask records the user's query and suspends input. The query is trimmed;
// a blank one is rejected with ErrEmptyQuery and changes nothing.
func (c *Conversation) Ask(query string, now time.Time) (Message, error) {
	text := strings.TrimSpace(query)
	if text == "" {
		return Message{}, ErrEmptyQuery
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending {
		return Message{}, ErrAdvisorBusy
	}
	msg := Message{Role: RoleUser, Text: text, Timestamp: now}
	c.messages = append(c.messages, msg)
	c.pending = true
	return msg, nil
}

// Answer appends the model's reply and resumes input.
func (c *Conversation) Answer(text string, now time.Time) (Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.pending {
		return Message{}, ErrNoPendingAsk
	}
	msg := Message{Role: RoleModel, Text: text, Timestamp: now}
	c.messages = append(c.messages, msg)
	c.pending = false
	return msg, nil
}
