package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/Sr31bu/avocado-predictor/pkg/avocado"
	"github.com/Sr31bu/avocado-predictor/pkg/config"
)

// RedisStore keeps the training set as a Redis list, one CSV record per
// element, under "<key_prefix>:examples".
type RedisStore struct {
	client    *redis.Client
	key       string
	batchSize int
}

// NewRedisStore connects to the configured Redis server.
func NewRedisStore(ctx context.Context, cfg config.RedisDatasetConfig) (*RedisStore, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}
	opt.DB = cfg.DatabaseNum

	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opt.DialTimeout = timeout
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("Redis connection failed: %w", err)
	}

	return newRedisStore(client, cfg), nil
}

func newRedisStore(client *redis.Client, cfg config.RedisDatasetConfig) *RedisStore {
	batch := cfg.BatchSize
	if batch < 1 {
		batch = 100
	}
	return &RedisStore{
		client:    client,
		key:       fmt.Sprintf("%s:examples", cfg.KeyPrefix),
		batchSize: batch,
	}
}

// Key returns the list key holding the records.
func (rs *RedisStore) Key() string {
	return rs.key
}

// Load reads every record in the list.
func (rs *RedisStore) Load(ctx context.Context) ([]avocado.Example, error) {
	records, err := rs.client.LRange(ctx, rs.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, &MissingDataError{Path: "redis key " + rs.key}
	}

	examples := make([]avocado.Example, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec) == "" {
			continue
		}
		fields, err := csv.NewReader(strings.NewReader(rec)).Read()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		ex, err := ParseRecord(fields)
		if err != nil {
			var mre *MalformedRecordError
			if errors.As(err, &mre) {
				mre.Line = i + 1
				return nil, mre
			}
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		examples = append(examples, ex)
	}

	return examples, nil
}

// Import replaces the stored list with examples in a single transaction.
func (rs *RedisStore) Import(ctx context.Context, examples []avocado.Example) (int, error) {
	_, err := rs.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, rs.key)

		batch := make([]interface{}, 0, rs.batchSize)
		for _, ex := range examples {
			batch = append(batch, FormatRecord(ex))
			if len(batch) >= rs.batchSize {
				pipe.RPush(ctx, rs.key, batch...)
				batch = make([]interface{}, 0, rs.batchSize)
			}
		}
		if len(batch) > 0 {
			pipe.RPush(ctx, rs.key, batch...)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import failed: %w", err)
	}

	return len(examples), nil
}

// Close closes the Redis connection
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
