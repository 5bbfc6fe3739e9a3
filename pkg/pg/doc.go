// Package pg manages PostgreSQL connectivity with pgx/v5.
//
// Connect builds a pgxpool.Pool from Config and retries until the server
// answers a ping. Migrate applies goose migrations from any fs.FS, normally a
// package-level embed.FS, so the schema ships inside the binary:
//
//	//go:embed migrations/*.sql
//	var migrations embed.FS
//
//	if err := pg.Migrate(ctx, pool, migrations, "migrations", cfg, log); err != nil {
//		return err
//	}
//
// The Is* helpers classify driver errors by SQLSTATE.
package pg
