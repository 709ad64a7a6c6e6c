package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV" default:"development"`
	Port         int    `envconfig:"PORT" default:"8080"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`

	Store struct {
		// Driver selects the persistence backend: yaml, postgres or dynamodb.
		Driver string `envconfig:"STORE_DRIVER" default:"yaml"`
		// Path is the snapshot file location for the yaml driver.
		Path string `envconfig:"STORE_PATH" default:"addressbook.yaml"`
	}
	DB struct {
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT" default:"5432"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
	}
	DynamoDB struct {
		Region        string `envconfig:"DDB_REGION"`
		Endpoint      string `envconfig:"DDB_ENDPOINT"`
		AccessKey     string `envconfig:"DDB_ACCESS_KEY"`
		SecretKey     string `envconfig:"DDB_SECRET_KEY"`
		SessionToken  string `envconfig:"DDB_SESSION_TOKEN"`
		ContactsTable string `envconfig:"DDB_CONTACTS_TABLE"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
