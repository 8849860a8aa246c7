// Package config loads service settings from defaults, an optional
// configs/config.yaml, a .env file and the environment, in increasing
// order of precedence.
package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultConfigFile = "configs/config.yaml"

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	AWS         AWSConfig         `mapstructure:"aws"`
	Tables      TablesConfig      `mapstructure:"tables"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Redis       RedisConfig       `mapstructure:"redis"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Port               int      `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// AWSConfig holds credentials and optional endpoints. Endpoints are set for
// local DynamoDB / MinIO style setups and left empty against AWS.
type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
	S3Endpoint       string `mapstructure:"s3_endpoint"`
}

type TablesConfig struct {
	Rentals  string `mapstructure:"rentals"`
	Payments string `mapstructure:"payments"`
	Rooms    string `mapstructure:"rooms"`
}

type StorageConfig struct {
	Bucket            string `mapstructure:"bucket"`
	MaxProofBytes     int64  `mapstructure:"max_proof_bytes"`
	MaxProofDimension int    `mapstructure:"max_proof_dimension"`
	MaxProofPixels    int    `mapstructure:"max_proof_pixels"`
}

// RedisConfig is optional: with an empty Addr proof submissions are
// serialized by conditional writes only.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type MercadoPagoConfig struct {
	AccessToken    string `mapstructure:"access_token"`
	Mock           string `mapstructure:"mock"`
	// TestPayerEmail fills payer.email on sandbox requests that carry no payer.
	TestPayerEmail string `mapstructure:"test_payer_email"`
}

// MockEnabled accepts the same truthy spellings the gateway always has.
func (c MercadoPagoConfig) MockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.Mock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the configuration from DefaultConfigFile.
func Load() (*Config, error) {
	return LoadFile(DefaultConfigFile)
}

// LoadFile reads the configuration using path as the optional YAML file.
// A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.Server.CorsAllowedOrigins = splitList(cfg.Server.CorsAllowedOrigins)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("aws.region", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("aws.dynamodb_endpoint", "")
	v.SetDefault("aws.s3_endpoint", "")

	v.SetDefault("tables.rentals", "rentals")
	v.SetDefault("tables.payments", "rental_payments")
	v.SetDefault("tables.rooms", "rooms")

	v.SetDefault("storage.bucket", "rental-payment-proofs")
	v.SetDefault("storage.max_proof_bytes", 2<<20)
	v.SetDefault("storage.max_proof_dimension", 1600)
	v.SetDefault("storage.max_proof_pixels", 40_000_000)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.lock_ttl", 30*time.Second)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "rental-billing")

	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("mercadopago.mock", "")
	v.SetDefault("mercadopago.test_payer_email", "")

	v.SetDefault("log.level", "info")
}

// bindLegacyEnv keeps the flat variable names deployments already export.
// The first name listed wins.
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"aws.dynamodb_endpoint":        {"AWS_DYNAMODB_ENDPOINT", "DYNAMODB_ENDPOINT"},
		"aws.s3_endpoint":              {"AWS_S3_ENDPOINT", "S3_ENDPOINT"},
		"tables.rentals":               {"TABLES_RENTALS", "RENTALS_TABLE"},
		"tables.payments":              {"TABLES_PAYMENTS", "PAYMENTS_TABLE"},
		"tables.rooms":                 {"TABLES_ROOMS", "ROOMS_TABLE"},
		"jwt.secret":                   {"JWT_SECRET"},
		"mercadopago.access_token":     {"MERCADOPAGO_ACCESS_TOKEN"},
		"mercadopago.mock":             {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
		"mercadopago.test_payer_email": {"MERCADOPAGO_TEST_PAYER_EMAIL"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return err
		}
	}
	return nil
}

// splitList accepts both YAML lists and a single comma separated env value.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
