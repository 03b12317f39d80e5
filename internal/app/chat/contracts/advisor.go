package contracts

import "context"

// Advisor is the external text service behind the chat: one request, one
// response. An empty answer with a nil error means the service said nothing.
type Advisor interface {
	Advise(ctx context.Context, systemInstruction, query string) (string, error)
}
