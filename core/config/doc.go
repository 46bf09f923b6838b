// Package config provides configuration management for the s3state tool.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into subsections:
//   - Storage: endpoint, credentials, region, and connection timeouts
//   - Log: logging level and format
//
// Defaults come from the `default` struct tags, and every key is overridable
// through the environment (e.g. STORAGE_ACCESS_KEY, STORAGE_ENDPOINT).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Endpoint)
package config
