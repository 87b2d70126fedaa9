package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/puzzlesuite-go/internal/model"
	"github.com/mcoot/puzzlesuite-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Word list operations

func (s *Storage) SaveWordList(ctx context.Context, name string, words []string) error {
	key := wordListKey(name)

	// Replace the existing list atomically
	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	if len(words) > 0 {
		members := make([]interface{}, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, key, members...)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetWordList(ctx context.Context, name string) ([]string, error) {
	key := wordListKey(name)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrWordListNotFound
	}

	return s.client.SMembers(ctx, key).Result()
}

// Saved puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.SavedPuzzle) error {
	data, err := json.Marshal(puzzle)
	if err != nil {
		return err
	}

	pKey := puzzleKey(puzzle.ID)
	indexKey := puzzleIndexKey()

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, pKey, data, s.cfg.PuzzleTTL)
	pipe.SAdd(ctx, indexKey, pKey)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.SavedPuzzle, error) {
	data, err := s.client.Get(ctx, puzzleKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPuzzleNotFound
		}
		return nil, err
	}

	var puzzle model.SavedPuzzle
	if err := json.Unmarshal(data, &puzzle); err != nil {
		return nil, err
	}
	return &puzzle, nil
}

func (s *Storage) ListPuzzles(ctx context.Context) ([]*model.SavedPuzzle, error) {
	keys, err := s.client.SMembers(ctx, puzzleIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.SavedPuzzle{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	puzzles := make([]*model.SavedPuzzle, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Puzzle may have expired
		}
		var puzzle model.SavedPuzzle
		if err := json.Unmarshal([]byte(val.(string)), &puzzle); err != nil {
			continue // Skip invalid data
		}
		puzzles = append(puzzles, &puzzle)
	}

	sort.Slice(puzzles, func(i, j int) bool {
		if puzzles[i].CreatedAt.Equal(puzzles[j].CreatedAt) {
			return puzzles[i].ID < puzzles[j].ID
		}
		return puzzles[i].CreatedAt.Before(puzzles[j].CreatedAt)
	})

	return puzzles, nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	pKey := puzzleKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, pKey)
	pipe.SRem(ctx, puzzleIndexKey(), pKey)
	_, err := pipe.Exec(ctx)
	return err
}

// Solve result operations

func (s *Storage) SaveSolveResult(ctx context.Context, result *model.SolveResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	rKey := resultKey(result.ID)
	indexKey := resultsForPuzzleIndexKey(result.PuzzleID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, rKey, data, s.cfg.ResultTTL)
	pipe.SAdd(ctx, indexKey, rKey)
	pipe.Expire(ctx, indexKey, s.cfg.ResultTTL) // Keep index TTL in sync
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSolveResult(ctx context.Context, id model.ResultID) (*model.SolveResult, error) {
	data, err := s.client.Get(ctx, resultKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrResultNotFound
		}
		return nil, err
	}

	var result model.SolveResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Storage) ListSolveResults(ctx context.Context, puzzleID model.PuzzleID) ([]*model.SolveResult, error) {
	keys, err := s.client.SMembers(ctx, resultsForPuzzleIndexKey(puzzleID)).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.SolveResult{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	results := make([]*model.SolveResult, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var result model.SolveResult
		if err := json.Unmarshal([]byte(val.(string)), &result); err != nil {
			continue
		}
		results = append(results, &result)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].ID < results[j].ID
		}
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})

	return results, nil
}

func (s *Storage) DeleteSolveResultsForPuzzle(ctx context.Context, puzzleID model.PuzzleID) error {
	indexKey := resultsForPuzzleIndexKey(puzzleID)

	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	pipe.Del(ctx, indexKey)
	_, err = pipe.Exec(ctx)
	return err
}
