package contracts

import (
	"context"

	commitplan "github.com/murkotick/storefront-service/internal/pkg/committer"
)

// Committer applies a collection of mutations atomically. It keeps the seed
// usecase independent of Spanner transaction details.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
