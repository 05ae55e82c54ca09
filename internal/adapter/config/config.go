package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	App  *App
	Demo *Demo
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Demo struct {
	Seed bool `env:"SEED_DEMO_DATA"`
}

func NewConfig() (*Config, error) {
	var app App
	var demo Demo

	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.BoolVar(&demo.Seed, "s", true, "Load demo catalog and customer data")
	flag.Parse()

	err := env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&demo)
	if err != nil {
		return nil, fmt.Errorf("error parsing demo config: %w", err)
	}

	config := Config{
		App:  &app,
		Demo: &demo,
	}

	return &config, nil
}
