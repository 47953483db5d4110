package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/infrastructure/config"
)

func TestSetDefaults(t *testing.T) {
	// Arrange
	cfg := &config.Config{}

	// Act
	config.SetDefaults(cfg)

	// Assert
	assert.Equal(t, 10, cfg.Planner.MaxDepth)
	assert.Equal(t, 0.01, cfg.Planner.HaulingRate)
	assert.Equal(t, 10000.0, cfg.Planner.Budget)
	assert.Equal(t, []string{"upgrade"}, cfg.Planner.GoalResources)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "colony.db", cfg.Database.Path)
	assert.Equal(t, 9190, cfg.Metrics.Port)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestSetDefaults_KeepsExplicitValues(t *testing.T) {
	// Arrange
	cfg := &config.Config{}
	cfg.Planner.MaxDepth = 4
	cfg.Planner.GoalResources = []string{"expansion"}

	// Act
	config.SetDefaults(cfg)

	// Assert
	assert.Equal(t, 4, cfg.Planner.MaxDepth)
	assert.Equal(t, []string{"expansion"}, cfg.Planner.GoalResources)
}

func TestValidateConfig_AcceptsDefaults(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)

	err := config.ValidateConfig(cfg)

	require.NoError(t, err)
}

func TestValidateConfig_RejectsBadPlannerValues(t *testing.T) {
	// Arrange
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Planner.MaxDepth = -1
	cfg.Planner.HaulingRate = -0.5

	// Act
	err := config.ValidateConfig(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MaxDepth")
	assert.Contains(t, err.Error(), "HaulingRate")
}

func TestLoadConfigOrDefault_FallsBackOnMissingFile(t *testing.T) {
	// Act
	cfg := config.LoadConfigOrDefault("/nonexistent/config.yaml")

	// Assert
	require.NotNil(t, cfg)
	assert.Equal(t, 10, cfg.Planner.MaxDepth)
	assert.Equal(t, "sqlite", cfg.Database.Type)
}
