// Package config provides configuration loading for fetchkit applications.
//
// It uses Viper to load configuration from files and environment variables,
// supporting YAML files, .env files (via godotenv), and environment
// overrides.
//
// # Usage
//
//	var s config.Settings
//	err := config.Load("my-service", &s, config.WithConfigFile("config.yml"))
//
// Environment variables override file values using underscore-separated
// paths (e.g., FETCHER_BASE_URL).
package config
