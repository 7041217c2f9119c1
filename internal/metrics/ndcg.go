package metrics

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/DjordjeVuckovic/rank-metrics/internal/apperr"
)

var ErrInvalidInput = apperr.ErrInvalidInput

// Result holds the scores of one Evaluate call.
type Result struct {
	K          int // k as requested
	EffectiveK int // k after clamping to the item count
	DCG        float64
	IdealDCG   float64
	NDCG       float64
}

// HasRelevant reports whether any relevant item exists, which separates
// "nothing to find" from "found nothing" when NDCG is 0.
func (r Result) HasRelevant() bool {
	return r.IdealDCG > 0
}

func (r Result) Name() string {
	return fmt.Sprintf("NDCG@%d", r.K)
}

// Calculator computes DCG and NDCG under the k and relevance policies of its Config.
type Calculator struct {
	config Config
}

// New fills zero fields of cfg from DefaultConfig and validates the result.
func New(cfg Config) (*Calculator, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("metrics config: %w", err)
	}
	return &Calculator{config: cfg}, nil
}

func (c *Calculator) Config() Config {
	return c.config
}

var defaultCalculator = &Calculator{config: DefaultConfig()}

// DCG computes Discounted Cumulative Gain at rank K using DefaultConfig.
func DCG(truth []int, scores []float64, k int) (float64, error) {
	return defaultCalculator.DCG(truth, scores, k)
}

// NDCG computes Normalized Discounted Cumulative Gain at rank K using DefaultConfig.
func NDCG(truth []int, scores []float64, k int) (float64, error) {
	return defaultCalculator.NDCG(truth, scores, k)
}

// DCG orders items by score descending (ties keep input order) and sums
// (2^rel - 1) / log2(i+2) over the top K positions, i starting at 0.
func (c *Calculator) DCG(truth []int, scores []float64, k int) (float64, error) {
	n, err := c.validate(truth, scores, k)
	if err != nil {
		return 0, err
	}
	return dcgAtK(truth, scores, n), nil
}

// NDCG returns DCG / ideal DCG, or 0 when the ideal DCG is 0.
func (c *Calculator) NDCG(truth []int, scores []float64, k int) (float64, error) {
	r, err := c.Evaluate(truth, scores, k)
	if err != nil {
		return 0, err
	}
	return r.NDCG, nil
}

// Evaluate returns DCG, ideal DCG and NDCG at rank K. When NDCG is 0,
// Result.HasRelevant tells an empty relevant set from a ranking that missed it.
func (c *Calculator) Evaluate(truth []int, scores []float64, k int) (Result, error) {
	n, err := c.validate(truth, scores, k)
	if err != nil {
		return Result{}, err
	}

	r := Result{
		K:          k,
		EffectiveK: n,
		DCG:        dcgAtK(truth, scores, n),
		IdealDCG:   idealDCGAtK(truth, n),
	}
	if r.IdealDCG > 0 {
		r.NDCG = r.DCG / r.IdealDCG
	}

	return r, nil
}

// validate checks the inputs and returns the effective k.
func (c *Calculator) validate(truth []int, scores []float64, k int) (int, error) {
	if len(truth) != len(scores) {
		return 0, apperr.NewValidationf("scores", "length %d does not match truth length %d", len(scores), len(truth))
	}
	if k <= 0 {
		return 0, apperr.NewValidationf("k", "must be positive, got %d", k)
	}

	n := len(truth)
	if k > n {
		if c.config.KPolicy == KPolicyStrict {
			return 0, apperr.NewValidationf("k", "%d exceeds item count %d", k, n)
		}
		slog.Debug("Clamping k to item count", "k", k, "items", n)
		k = n
	}

	for i, rel := range truth {
		if rel < 0 {
			return 0, apperr.NewValidationf("truth", "negative value %d at index %d", rel, i)
		}
		if c.config.Relevance == RelevanceBinary && rel > 1 {
			return 0, apperr.NewValidationf("truth", "value %d at index %d is not binary", rel, i)
		}
	}
	for i, s := range scores {
		if math.IsNaN(s) {
			return 0, apperr.NewValidationf("scores", "NaN at index %d", i)
		}
	}

	return k, nil
}

func dcgAtK(truth []int, scores []float64, k int) float64 {
	order := rankOrder(scores)
	var dcg float64

	for i := 0; i < k; i++ {
		rel := truth[order[i]]
		dcg += (math.Pow(2, float64(rel)) - 1) / math.Log2(float64(i+2))
	}

	return dcg
}

// idealDCGAtK ranks items by their own labels.
func idealDCGAtK(truth []int, k int) float64 {
	keys := make([]float64, len(truth))
	for i, rel := range truth {
		keys[i] = float64(rel)
	}
	return dcgAtK(truth, keys, k)
}

func rankOrder(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	return order
}
