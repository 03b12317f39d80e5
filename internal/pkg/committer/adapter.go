package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
)

// Adapter applies plans through a Spanner read-write transaction.
type Adapter struct {
	client *spanner.Client
	logger *zap.Logger
}

func NewAdapter(client *spanner.Client, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{client: client, logger: logger}
}

func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}

	if a.client == nil {
		return fmt.Errorf("committer: spanner client is nil")
	}

	ts, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		return tx.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return fmt.Errorf("committer: apply %d mutations: %w", plan.Len(), err)
	}

	a.logger.Debug("plan committed",
		zap.Int("mutations", plan.Len()),
		zap.Time("commit_ts", ts))
	return nil
}
