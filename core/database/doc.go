// Package database handles database connections.
//
// It wraps GORM connection setup for the two supported drivers: MySQL for
// deployments and sqlite for tests and quick local runs. Connection pooling
// and I/O timeouts are configured on the MySQL path; sqlite connections are
// handed back as-is.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
