package config

type Server struct {
	// Port of the server.
	//
	// Default: 8080
	Port string
	// Host of the server.
	//
	// Default: :
	Host string
	// Scheme
	//
	// Default: http
	Scheme string `validate:"oneof='http' 'https'"`
	// RPS is rate per second. If 0, RateLimiterMiddleware will be disabled.
	//
	// Default: 100
	RPS int
}
