package redis

import "time"

// Config holds Redis connection and TTL settings
type Config struct {
	URL          string
	PoolSize     int
	MinIdleConns int

	// TTLs; zero means no expiry
	PuzzleTTL time.Duration
	ResultTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis storage
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		PuzzleTTL:    30 * 24 * time.Hour,
		ResultTTL:    30 * 24 * time.Hour,
	}
}
