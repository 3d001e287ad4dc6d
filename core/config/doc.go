// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls, so independent components loading the same type observe
// identical values.
//
// The package loads a .env file on first use (if present) and parses
// environment variables into struct fields via the caarlos0/env library.
//
// Basic usage:
//
//	type APIConfig struct {
//		BaseURL string        `env:"SMARTOKO_API_BASE_URL,required"`
//		Timeout time.Duration `env:"SMARTOKO_HTTP_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg APIConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Or panic on failure during startup:
//
//	config.MustLoad(&cfg)
package config
