package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Sr31bu/avocado-predictor/pkg/avocado"
	"github.com/Sr31bu/avocado-predictor/pkg/config"
)

func testRedisConfig(mr *miniredis.Miniredis) config.RedisDatasetConfig {
	cfg := config.DefaultConfig().Dataset.Redis
	cfg.RedisURL = "redis://" + mr.Addr()
	cfg.KeyPrefix = "avocado:test"
	cfg.BatchSize = 2
	return cfg
}

func TestRedisImportLoad(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	store, err := NewRedisStore(ctx, testRedisConfig(mr))
	if err != nil {
		t.Fatalf("Failed to create Redis store: %v", err)
	}
	defer store.Close()

	examples := []avocado.Example{
		{Color: avocado.Green, Softness: avocado.Soft, Label: avocado.Yes},
		{Color: avocado.Black, Softness: avocado.Hard, Label: avocado.No},
		{Color: avocado.Green, Softness: avocado.Hard, Label: avocado.No},
	}

	n, err := store.Import(ctx, examples)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if n != len(examples) {
		t.Errorf("Import returned %d, expected %d", n, len(examples))
	}

	// A second import replaces rather than appends.
	if _, err := store.Import(ctx, examples); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != len(examples) {
		t.Fatalf("loaded %d examples, expected %d", len(loaded), len(examples))
	}
	for i := range examples {
		if loaded[i] != examples[i] {
			t.Errorf("example %d = %+v, expected %+v", i, loaded[i], examples[i])
		}
	}
}

func TestRedisLoadMissing(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := NewRedisStore(context.Background(), testRedisConfig(mr))
	if err != nil {
		t.Fatalf("Failed to create Redis store: %v", err)
	}
	defer store.Close()

	if _, err := store.Load(context.Background()); !errors.Is(err, ErrMissingData) {
		t.Fatalf("expected ErrMissingData, got %v", err)
	}
}

func TestRedisLoadMalformed(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	cfg := testRedisConfig(mr)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	if err := client.RPush(ctx, cfg.KeyPrefix+":examples", "GREEN,SOFT,YES", " ", "GREEN,SOFT").Err(); err != nil {
		t.Fatal(err)
	}

	loader, err := NewLoader(ctx, config.DatasetConfig{Backend: "redis", Redis: cfg}, "")
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	defer loader.Close()

	_, err = loader.Load(ctx)
	var mre *MalformedRecordError
	if !errors.As(err, &mre) {
		t.Fatalf("expected *MalformedRecordError, got %v", err)
	}
	if mre.Line != 3 {
		t.Errorf("Line = %d, expected 3", mre.Line)
	}
}

func TestNewRedisStoreBadURL(t *testing.T) {
	cfg := config.DefaultConfig().Dataset.Redis
	cfg.RedisURL = "not-a-url"
	if _, err := NewRedisStore(context.Background(), cfg); err == nil {
		t.Fatal("expected error for invalid URL")
	}
}
