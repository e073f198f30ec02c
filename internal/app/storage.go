package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/saaslanding/migrations"
	"github.com/dmitrymomot/saaslanding/pkg/httpserver"
	"github.com/dmitrymomot/saaslanding/pkg/logger"
	"github.com/dmitrymomot/saaslanding/pkg/mongo"
	"github.com/dmitrymomot/saaslanding/pkg/pg"
	"github.com/dmitrymomot/saaslanding/pkg/redis"
	"github.com/dmitrymomot/saaslanding/svc/lead"
)

// Storage is an opened lead backend with its readiness checks.
type Storage struct {
	lead.Storage
	Name   string
	Checks []httpserver.HealthCheck
	close  func()
}

// Close releases the backend connection.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage connects the backend named by cfg.App.Storage. Postgres runs
// pending migrations first when migrate is true.
func OpenStorage(ctx context.Context, cfg Config, log *slog.Logger, migrate bool) (*Storage, error) {
	log = log.With(logger.Storage(cfg.App.Storage))

	switch cfg.App.Storage {
	case StorageMemory, "":
		log.WarnContext(ctx, "leads are kept in memory and lost on restart")
		return &Storage{Storage: lead.NewMemoryStorage(), Name: StorageMemory}, nil

	case StoragePostgres:
		pool, err := pg.Connect(ctx, cfg.PG)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := pg.Migrate(ctx, pool, migrations.FS, cfg.PG, log); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &Storage{
			Storage: lead.NewPostgresStorage(pool),
			Name:    StoragePostgres,
			Checks:  []httpserver.HealthCheck{{Name: "postgres", Check: pg.Healthcheck(pool)}},
			close:   pool.Close,
		}, nil

	case StorageMongo:
		db, err := mongo.NewWithDatabase(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		disconnect := func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				log.Error("disconnect mongo", logger.Error(err))
			}
		}
		storage, err := lead.NewMongoStorage(ctx, db)
		if err != nil {
			disconnect()
			return nil, err
		}
		return &Storage{
			Storage: storage,
			Name:    StorageMongo,
			Checks:  []httpserver.HealthCheck{{Name: "mongo", Check: mongo.Healthcheck(db.Client())}},
			close:   disconnect,
		}, nil

	case StorageRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Storage: lead.NewRedisStorage(client),
			Name:    StorageRedis,
			Checks:  []httpserver.HealthCheck{{Name: "redis", Check: redis.Healthcheck(client)}},
			close: func() {
				if err := client.Close(); err != nil {
					log.Error("close redis", logger.Error(err))
				}
			},
		}, nil
	}

	return nil, fmt.Errorf("%w: unknown storage %q", ErrInvalidConfig, cfg.App.Storage)
}
