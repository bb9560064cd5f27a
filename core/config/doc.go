// Package config provides configuration management for lootledger.
//
// It utilizes Viper for loading configuration from environment variables,
// with an optional .env overlay loaded via godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials and bucket settings for report uploads
//   - Log: Logging level and format
//   - Gameinfo: game-data API base URL and per-request timeout
//   - Recon: reconciliation defaults (party filter, output file, fan-out cap)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
