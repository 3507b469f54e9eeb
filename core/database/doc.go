// Package database provides the GORM database connection layer.
//
// It supports MySQL for production deployments and sqlite for local
// development and tests. Connections are created with TranslateError
// enabled, which the version stores depend on for conflict detection,
// and with conservative pool and timeout settings.
package database
