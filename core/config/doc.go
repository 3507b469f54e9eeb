// Package config loads the application configuration.
//
// Configuration is read from environment variables (optionally via a
// .env file) into nested structs, with defaults declared as struct tags
// next to each field. Environment keys map to nested keys by replacing
// dots with underscores, e.g. DATABASE_DRIVER -> database.driver.
package config
