package config

type AppConfig struct {
	APIPort                string `env:"PORT" envDefault:"4000"`
	PlaygroundEnabled      bool   `env:"GRAPHQL_PLAYGROUND_ENABLED" envDefault:"true"`
	OpsEndpointsEnabled    bool   `env:"OPS_ENDPOINTS_ENABLED" envDefault:"false"`
	GraphQLMaxParallelism  int    `env:"GRAPHQL_MAX_PARALLELISM" envDefault:"10"`
	PasswordHashCost       int    `env:"PASSWORD_HASH_COST" envDefault:"10"`
	ShutdownTimeoutSeconds int    `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"15"`
}
