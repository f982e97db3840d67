package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"wfc-chunk/internal/app"
	"wfc-chunk/internal/chunk"
	"wfc-chunk/internal/export"
	"wfc-chunk/internal/host"
	"wfc-chunk/internal/random"
	"wfc-chunk/internal/storage/sqlite"
)

func main() {
	cfg, err := app.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	cfg.BindOutput(flag.CommandLine)
	flag.Parse()

	chunk.SetLogger(cfg.Logger())

	if cfg.Random {
		if cfg.Seed, err = random.NewSeed(); err != nil {
			log.Fatal(err)
		}
	}

	if err := run(context.Background(), cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *app.Config, out, errOut io.Writer) error {
	cc, err := cfg.ChunkConfig()
	if err != nil {
		return err
	}

	var store *sqlite.Store
	if cfg.DB != "" {
		if store, err = sqlite.Open(cfg.DB); err != nil {
			return err
		}
		defer func() {
			if cerr := store.Close(); cerr != nil {
				log.Printf("close cache: %v", cerr)
			}
		}()
	}

	key := sqlite.Key{Size: cc.Size, MaxTile: cc.MaxTile, Algorithm: cc.Algorithm, Seed: cfg.Seed}
	if store != nil && cfg.Evict {
		if err := store.Delete(ctx, key); err != nil {
			return err
		}
	}

	tiles, err := tilesFor(ctx, store, cc, key)
	if err != nil {
		return err
	}

	if store != nil && cfg.Stats {
		n, err := store.Count(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(errOut, "cache %s: %d chunks\n", cfg.DB, n)
	}

	switch cfg.Format {
	case "text":
		err = export.WriteText(out, tiles, cc.Size)
	case "json":
		err = export.WriteJSON(out, export.Document{
			Seed:      cfg.Seed,
			Size:      cc.Size,
			MaxTile:   cc.MaxTile,
			Algorithm: cc.Algorithm,
			Tiles:     tiles,
		})
	case "none":
	default:
		err = fmt.Errorf("unknown format %q", cfg.Format)
	}
	if err != nil {
		return err
	}

	if cfg.PNG != "" {
		return export.WritePNG(cfg.PNG, tiles, cc.Size, export.PNGOptions{
			Scale:   cfg.Scale,
			MaxTile: cc.MaxTile,
		})
	}
	return nil
}

// tilesFor returns the cached grid when store holds one, otherwise it
// generates through the host binding and caches the result.
func tilesFor(ctx context.Context, store *sqlite.Store, cc chunk.Config, key sqlite.Key) ([]int32, error) {
	if store != nil {
		rec, err := store.Get(ctx, key)
		if err == nil {
			chunk.Logger().Info("chunk cache hit", "seed", key.Seed)
			return rec.Tiles, nil
		}
		if !errors.Is(err, sqlite.ErrNotFound) {
			return nil, err
		}
	}

	tiles, err := generate(cc, key.Seed)
	if err != nil {
		return nil, err
	}
	if store != nil {
		if err := store.Put(ctx, sqlite.Record{Key: key, Tiles: tiles}); err != nil {
			return nil, err
		}
	}
	return tiles, nil
}

// generate walks the full host lifecycle: load the extension, instantiate a
// WFCChunk, call generate and get_flat_grid, then tear everything down.
func generate(cc chunk.Config, seed int64) (tiles []int32, err error) {
	db := host.NewClassDB()
	ext := host.NewExtension(db, host.LevelScene, host.NewChunkModule(cc))
	for _, level := range []host.InitLevel{host.LevelCore, host.LevelServers, host.LevelScene} {
		if err := ext.Initialize(level); err != nil {
			return nil, err
		}
	}
	defer func() {
		for _, level := range []host.InitLevel{host.LevelScene, host.LevelServers, host.LevelCore} {
			if derr := ext.Deinitialize(level); derr != nil && err == nil {
				err = derr
			}
		}
	}()

	h, err := db.Instantiate(host.ChunkClass)
	if err != nil {
		return nil, err
	}
	defer func() {
		if !h.Unref() {
			chunk.Logger().Warn("chunk handle still referenced", "refs", h.Refs())
		}
	}()

	if _, err := db.Call(h, "generate", seed); err != nil {
		return nil, err
	}
	res, err := db.Call(h, "get_flat_grid")
	if err != nil {
		return nil, err
	}
	return res.([]int32), nil
}
