package metrics

import (
	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/rank-metrics/internal/apperr"
)

// FromRanking turns a ranked document list and its judgments into
// index-aligned truth and scores. Earlier positions get higher scores and
// unjudged documents count as 0.
func FromRanking(ranked []uuid.UUID, judgments map[uuid.UUID]int) ([]int, []float64, error) {
	seen := make(map[uuid.UUID]struct{}, len(ranked))
	truth := make([]int, len(ranked))
	scores := make([]float64, len(ranked))

	for i, docID := range ranked {
		if _, dup := seen[docID]; dup {
			return nil, nil, apperr.NewValidationf("ranked", "duplicate document %s at position %d", docID, i)
		}
		seen[docID] = struct{}{}

		truth[i] = judgments[docID]
		scores[i] = float64(len(ranked) - i)
	}

	return truth, scores, nil
}

// NDCGForRanking computes NDCG@K over the documents in ranked. Judged
// documents missing from the ranking do not contribute to the ideal DCG.
func (c *Calculator) NDCGForRanking(ranked []uuid.UUID, judgments map[uuid.UUID]int, k int) (float64, error) {
	truth, scores, err := FromRanking(ranked, judgments)
	if err != nil {
		return 0, err
	}
	return c.NDCG(truth, scores, k)
}
