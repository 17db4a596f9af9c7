package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache maps reflect.Type to the parsed configuration value so each
	// configuration type is loaded at most once per process.
	cache sync.Map

	// dotenvOnce loads .env files once before the first parse. A missing
	// .env file is not an error; the environment simply wins.
	dotenvOnce sync.Once
)

// Load populates cfg from environment variables using env/envDefault struct
// tags. The first call for a given type parses the environment; subsequent
// calls return the cached value.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	parsed, err := env.ParseAs[T]()
	if err != nil {
		return fmt.Errorf("config: failed to load %s: %w", key, err)
	}

	actual, _ := cache.LoadOrStore(key, parsed)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load that panics on failure. Useful during application startup
// where missing required configuration should halt the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
