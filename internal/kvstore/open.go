package kvstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ibomair/appcore/config"
)

// Open selects the backend from config and returns it with a cleanup
// function. An unrecognized backend falls back to memory.
func Open(ctx context.Context, cfg *config.Config) (Store, func(), error) {
	switch cfg.Storage.Backend {
	case "redis":
		store := NewRedis(cfg.Redis)
		return store, func() { _ = store.Close() }, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		return NewPostgres(pool), pool.Close, nil
	default:
		return NewMemory(), func() {}, nil
	}
}
