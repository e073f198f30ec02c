// Package pg connects to PostgreSQL through a pgx/v5 pool and applies goose
// migrations from an fs.FS.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//	if err := pg.Migrate(ctx, pool, migrations.FS, cfg, log); err != nil { ... }
//
// IsDuplicateKeyError and IsNotFoundError classify driver errors.
package pg
