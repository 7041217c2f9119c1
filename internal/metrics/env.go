package metrics

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/rank-metrics/internal/apperr"
	"github.com/DjordjeVuckovic/rank-metrics/pkg/config/env"
)

const (
	EnvKPolicy   = "NDCG_K_POLICY"
	EnvRelevance = "NDCG_RELEVANCE"
	EnvWorkers   = "NDCG_WORKERS"
)

// ConfigFromEnv loads the .env file at dotenvPath (or ENV_PATH) and overlays
// NDCG_* environment variables on DefaultConfig. Variables already set in the
// process environment win over the file.
func ConfigFromEnv(envName, dotenvPath string) (Config, error) {
	if err := env.LoadDotEnv(envName, dotenvPath); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	d := DefaultConfig()

	workers, err := env.Int(EnvWorkers, d.Workers)
	if err != nil {
		return Config{}, apperr.NewValidationWrap(EnvWorkers, "read workers", err)
	}

	c := Config{
		KPolicy:   KPolicy(env.String(EnvKPolicy, string(d.KPolicy))),
		Relevance: RelevanceMode(env.String(EnvRelevance, string(d.Relevance))),
		Workers:   workers,
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("metrics config from env: %w", err)
	}
	return c, nil
}
