package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mwhitford/labelguard/internal/catalog"
	"github.com/mwhitford/labelguard/internal/config"
	"github.com/mwhitford/labelguard/internal/engine"
	"github.com/mwhitford/labelguard/internal/model"
	"github.com/mwhitford/labelguard/internal/service"
	"github.com/mwhitford/labelguard/internal/storage"
)

// initStorage initializes the scan store with proper path expansion.
func initStorage() (service.ScanStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/labelguard/labelguard.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open scan store: %w", err)
	}

	return store, nil
}

// initEngine builds the engine over the compiled-in catalog, applying any
// scoring overrides from configuration.
func initEngine() (*engine.Engine, *catalog.Catalog) {
	cat := catalog.New()

	cfg := engine.DefaultConfig()
	if viper.IsSet("scoring.critical_penalty") {
		cfg.CriticalPenalty = viper.GetInt("scoring.critical_penalty")
	}
	if viper.IsSet("scoring.warning_penalty") {
		cfg.WarningPenalty = viper.GetInt("scoring.warning_penalty")
	}
	if viper.IsSet("scoring.recommendation_penalty") {
		cfg.RecommendationPenalty = viper.GetInt("scoring.recommendation_penalty")
	}
	if viper.IsSet("scoring.low_risk_floor") {
		cfg.LowRiskFloor = viper.GetInt("scoring.low_risk_floor")
	}
	if viper.IsSet("scoring.medium_risk_floor") {
		cfg.MediumRiskFloor = viper.GetInt("scoring.medium_risk_floor")
	}

	return engine.NewWithConfig(cat, cfg), cat
}

// parseJurisdictions converts flag values into model jurisdictions, rejecting
// unknown names early for a friendlier error than the engine's.
func parseJurisdictions(values []string) ([]model.Jurisdiction, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one jurisdiction is required (one of USA, UK, Germany)")
	}

	jurisdictions := make([]model.Jurisdiction, 0, len(values))
	for _, v := range values {
		j := model.Jurisdiction(v)
		if !j.Valid() {
			return nil, fmt.Errorf("unknown jurisdiction %q (one of USA, UK, Germany)", v)
		}
		jurisdictions = append(jurisdictions, j)
	}
	return jurisdictions, nil
}
