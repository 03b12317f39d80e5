package ask_advisor

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	contracts "github.com/murkotick/storefront-service/internal/app/chat/contracts"
	"github.com/murkotick/storefront-service/internal/app/chat/domain"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
)

// Reply is the outcome of one send. Ignored is set for blank queries, which
// leave the transcript untouched. Fallback is set when Answer is one of the
// fixed fallback texts instead of an advisor reply.
type Reply struct {
	Ignored  bool
	Fallback bool
	Question domain.Message
	Answer   domain.Message
}

// Interactor relays a shopper's query to the advisor and records both sides
// in the conversation. A nil Advisor means no API key was configured.
type Interactor struct {
	Advisor           contracts.Advisor
	SystemInstruction string
	Clock             clock.Clock
	Logger            *zap.Logger
}

func NewInteractor(advisor contracts.Advisor, systemInstruction string, clk clock.Clock, logger *zap.Logger) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{
		Advisor:           advisor,
		SystemInstruction: systemInstruction,
		Clock:             clk,
		Logger:            logger,
	}
}

// Execute never surfaces advisor failures; they become fallback answers.
// The only error is domain.ErrAdvisorBusy while a previous query is unanswered.
func (it *Interactor) Execute(ctx context.Context, conv *domain.Conversation, query string) (Reply, error) {
	// 1. Record the question and suspend input
	question, err := conv.Ask(query, it.Clock.Now())
	if errors.Is(err, domain.ErrEmptyQuery) {
		return Reply{Ignored: true}, nil
	}
	if err != nil {
		return Reply{}, err
	}

	// 2. One call, no retry
	text, fallback := it.advise(ctx, question.Text)

	// 3. Record the answer and resume input
	answer, err := conv.Answer(text, it.Clock.Now())
	if err != nil {
		return Reply{}, err
	}
	return Reply{Fallback: fallback, Question: question, Answer: answer}, nil
}

// advise always yields an answer, so the conversation never stays pending.
func (it *Interactor) advise(ctx context.Context, query string) (text string, fallback bool) {
	if it.Advisor == nil {
		return domain.FallbackOffline, true
	}
	defer func() {
		if r := recover(); r != nil {
			it.Logger.Error("advisor panicked", zap.Any("panic", r), zap.Stack("stack"))
			text, fallback = domain.FallbackSignalLost, true
		}
	}()

	text, err := it.Advisor.Advise(ctx, it.SystemInstruction, query)
	if err != nil {
		it.Logger.Warn("advisor call failed", zap.Error(err))
		return domain.FallbackSignalLost, true
	}
	if strings.TrimSpace(text) == "" {
		it.Logger.Info("advisor returned empty response")
		return domain.FallbackInterrupted, true
	}
	return text, false
}
