package config

// PlannerConfig holds chain-planning parameters
type PlannerConfig struct {
	// Recursion depth bound for the backward supply trace
	MaxDepth int `mapstructure:"max_depth" validate:"min=1"`

	// Per-tile per-unit hauling surcharge applied to effective prices
	HaulingRate float64 `mapstructure:"hauling_rate" validate:"min=0"`

	// Credit budget available for funding chains each cycle
	Budget float64 `mapstructure:"budget" validate:"min=0"`

	// Resources treated as value-minting goals
	GoalResources []string `mapstructure:"goal_resources" validate:"min=1,dive,required"`

	// Per-unit mint value overrides merged onto the stock table
	MintValues map[string]float64 `mapstructure:"mint_values"`
}
