package config

// MetricsConfig controls planner metric recording and the Prometheus
// scrape endpoint served during a planning pass.
type MetricsConfig struct {
	// Enabled turns recording and the scrape endpoint on.
	Enabled bool `mapstructure:"enabled"`

	// Host and Port bind the scrape endpoint. The default host is
	// localhost so the endpoint is not reachable off the machine unless
	// asked for.
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`

	// Path the registry is served under, /metrics by default.
	Path string `mapstructure:"path"`
}
