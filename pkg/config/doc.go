// Package config loads typed configuration structs from environment variables.
//
// Struct fields are described with caarlos0/env tags. A .env file in the
// working directory is applied once before the first Load, which keeps local
// development setups close to the container environment.
//
//	type ServerConfig struct {
//		Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Timeout time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load caches the result per type, so feature packages may call it freely.
// Use Parse when a fresh read is needed, for example in tests that change
// variables with t.Setenv.
package config
