package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	RunAddress           string `env:"RUN_ADDRESS"`
	DatabaseDSN          string `env:"DATABASE_URI"`
	MigrationsDir        string `env:"MIGRATIONS_DIR"`
	JWTAdminSecret       string `env:"JWT_ADMIN_SECRET"`
	CommissionRate       string `env:"COMMISSION_RATE"`
	CurrencySymbol       string `env:"CURRENCY_SYMBOL"`
	UploadDir            string `env:"UPLOAD_DIR"`
	PayoutGatewayAddress string `env:"PAYOUT_GATEWAY_ADDRESS"`
}

func LoadConfig() (*Config, error) {
	// .env опционален, в контейнерах все приходит из окружения.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTAdminSecret == "" {
		return nil, errors.New("admin JWT secret is not set")
	}
	if _, rateErr := conf.Rate(); rateErr != nil {
		return nil, rateErr
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

// Rate возвращает ставку комиссии площадки. Это единственный источник ставки:
// никаких литералов 0.07 в расчетах быть не должно.
func (c *Config) Rate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.CommissionRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse commission rate `%s`: %s", c.CommissionRate, err.Error())
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("commission rate `%s` is out of [0, 1)", c.CommissionRate)
	}
	return rate, nil
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTAdminSecret, "s", "", "Admin JWT secret key")
	flag.StringVar(&flagConfig.CommissionRate, "r", "0.07", "Marketplace commission rate, e.g. 0.07")
	flag.StringVar(&flagConfig.CurrencySymbol, "c", "₱", "Currency symbol for formatted amounts")
	flag.StringVar(&flagConfig.UploadDir, "u", "uploads/tmp", "Directory for temp uploads")
	flag.StringVar(&flagConfig.PayoutGatewayAddress, "g", "", "Payout gateway base URL")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:           defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:          defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:        defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTAdminSecret:       defaultIfBlank(envConfig.JWTAdminSecret, flagsConfig.JWTAdminSecret),
		CommissionRate:       defaultIfBlank(envConfig.CommissionRate, flagsConfig.CommissionRate),
		CurrencySymbol:       defaultIfBlank(envConfig.CurrencySymbol, flagsConfig.CurrencySymbol),
		UploadDir:            defaultIfBlank(envConfig.UploadDir, flagsConfig.UploadDir),
		PayoutGatewayAddress: defaultIfBlank(envConfig.PayoutGatewayAddress, flagsConfig.PayoutGatewayAddress),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
