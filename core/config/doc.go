// Package config provides configuration management for the ciclo tooling.
//
// Values come from environment variables, optionally seeded from a .env file,
// with defaults declared in `default` struct tags next to each setting.
//
// # Configuration Structure
//
//   - Server: preview server port, document root, entry page, browser toggle
//   - Pages: pages directory, file extension, SVG cleanup target, publish prefix
//   - Storage: S3/MinIO credentials and bucket used by publish
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
