package metrics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Query struct {
	ID     uuid.UUID
	Truth  []int
	Scores []float64
}

type QueryResult struct {
	QueryID uuid.UUID
	Result  Result
	Err     error
}

// EvaluateBatch evaluates each query independently, at most Config.Workers
// at a time. Results keep the input order. Invalid queries carry their error
// in QueryResult.Err; only context cancellation fails the whole batch.
func (c *Calculator) EvaluateBatch(ctx context.Context, queries []Query, k int) ([]QueryResult, error) {
	results := make([]QueryResult, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.Workers)

	for i, q := range queries {
		id := q.ID
		if id == uuid.Nil {
			id = uuid.New()
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := c.Evaluate(q.Truth, q.Scores, k)
			if err != nil {
				slog.Debug("Query evaluation failed", "query_id", id, "error", err)
			}
			results[i] = QueryResult{QueryID: id, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluate batch: %w", err)
	}

	return results, nil
}
