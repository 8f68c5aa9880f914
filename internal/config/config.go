package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address  string `env:"RUN_ADDRESS"  envDefault:"localhost:3001"`
	Database string `env:"DATABASE_URL" envDefault:""`
	LogLvl   string `env:"LOG_LVL"      envDefault:"info"`
}

func New() *Config {
	godotenv.Load()

	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN (empty runs the in-memory fallback store)")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	return cfg
}
