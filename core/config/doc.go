// Package config loads application configuration.
//
// Configuration comes from environment variables (optionally seeded from a
// .env file via godotenv) and is unmarshalled with Viper into nested config
// structs owned by the packages they configure. Defaults are declared as
// `default` struct tags and registered through reflection, so adding a new
// option is a one-line change in the owning package.
//
// Environment keys map to nested fields by underscore, e.g.
// SOURCES_COUNTRIES_URL -> sources.countries_url, DATABASE_HOST -> database.host.
package config
