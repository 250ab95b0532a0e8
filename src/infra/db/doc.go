// Package db provides database connection and schema management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization
//   - Startup connectivity check (ping)
//   - Embedded goose migrations (see migrations/)
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	if err := db.Migrate(ctx, pg, log); err != nil {
//	    return err
//	}
package db
