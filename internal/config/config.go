package config

import (
	"github.com/MarisolRV/crossover/validate"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration is just that. Everything is read from the process
// environment once at startup
type Configuration struct {
	// Name of the API.
	Name string `validate:"required"`

	Server   Server
	Database Database
	Storage  Storage
}

// New reads the environment and returns a validated Configuration. A .env
// file is honored when present but never required
func New() (*Configuration, error) {
	// Ignore a missing .env; deployed environments set real variables
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("NAME", "crossover")
	v.SetDefault("HOST", ":")
	v.SetDefault("PORT", "8080")
	v.SetDefault("SCHEME", "http")
	v.SetDefault("RPS", 100)
	v.SetDefault("DATABASE_AUTOMIGRATE", true)
	v.SetDefault("STORAGE_REMOTE", false)
	v.SetDefault("STORAGE_SECURE", true)
	v.SetDefault("UPLOAD_DIR", "uploads")

	conf := Configuration{
		Name: v.GetString("NAME"),
		Server: Server{
			Host:   v.GetString("HOST"),
			Port:   v.GetString("PORT"),
			Scheme: v.GetString("SCHEME"),
			RPS:    v.GetInt("RPS"),
		},
		Database: Database{
			DSN:         v.GetString("DATABASE_URL"),
			AutoMigrate: v.GetBool("DATABASE_AUTOMIGRATE"),
		},
		Storage: Storage{
			Remote:    v.GetBool("STORAGE_REMOTE"),
			Endpoint:  v.GetString("STORAGE_ENDPOINT"),
			AccessKey: v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey: v.GetString("STORAGE_SECRET_KEY"),
			Bucket:    v.GetString("STORAGE_BUCKET"),
			Secure:    v.GetBool("STORAGE_SECURE"),
			UploadDir: v.GetString("UPLOAD_DIR"),
		},
	}
	if err := validate.Check(conf); err != nil {
		return nil, err
	}
	return &conf, nil
}
