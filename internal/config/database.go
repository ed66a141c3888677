package config

type Database struct {
	// DSN is the Postgres connection string.
	DSN string `validate:"required"`
	// AutoMigrate will auto migrate tables on startup.
	//
	// Default: true
	AutoMigrate bool
}
