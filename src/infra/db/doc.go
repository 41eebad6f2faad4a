// Package db provides database connection management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization
//   - Connection health checks
//   - Optional SQL statement logging (APP_DB_LOG_QUERIES)
//
// The pool is created once in main, injected into every repository and
// closed on shutdown:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
package db
