package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/KirkDiggler/vtm-sheets/internal/config"
	"github.com/KirkDiggler/vtm-sheets/internal/errors"
	"github.com/KirkDiggler/vtm-sheets/internal/orchestrators/character"
	"github.com/KirkDiggler/vtm-sheets/internal/pkg/clock"
	"github.com/KirkDiggler/vtm-sheets/internal/redis"
	characterrepo "github.com/KirkDiggler/vtm-sheets/internal/repositories/character"
)

// openDir returns an orchestrator over the configured store. For the file
// store dir is the directory to scan; the redis store ignores it.
func openDir(ctx context.Context, dir string) (*character.Orchestrator, error) {
	var (
		repo characterrepo.Repository
		err  error
	)

	switch cfg.Store {
	case config.StoreRedis:
		repo, err = openRedis(ctx)
	default:
		repo, err = characterrepo.NewFilesystem(&characterrepo.FilesystemConfig{Dir: dir})
	}
	if err != nil {
		return nil, err
	}

	return character.New(&character.Config{CharacterRepo: repo})
}

// openPath resolves a record path into an orchestrator and the record's key.
// A file path is split into its directory and file name; with the redis
// store the whole argument is the key.
func openPath(ctx context.Context, path string) (*character.Orchestrator, string, error) {
	if cfg.Store == config.StoreRedis {
		o, err := openDir(ctx, "")
		return o, path, err
	}

	o, err := openDir(ctx, filepath.Dir(path))
	return o, filepath.Base(path), err
}

func openRedis(ctx context.Context) (characterrepo.Repository, error) {
	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		DialTimeout: cfg.RedisDialTimeout,
	})
	if err != nil {
		return nil, err
	}

	if err := redis.Ping(ctx, client); err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", cfg.RedisAddr).
			WithMeta("addr", cfg.RedisAddr)
	}

	slog.DebugContext(ctx, "connected to redis", "addr", cfg.RedisAddr)

	return characterrepo.NewRedis(&characterrepo.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
}
