// cardinal-server exposes HyperLogLog++ counters over a RESP-compatible TCP
// protocol. Clients create, feed, merge and query counters by key using
// standard Redis tooling (redis-cli, redis-benchmark) or any Redis client
// library.
//
// Commands
// ========
//
//	C.ADD key item [item ...]   add items; replies 1 if any register changed
//	C.COUNT key                 HyperLogLog++ estimate
//	C.ERTLCOUNT key             Ertl estimate
//	C.MERGE dest src [src ...]  union several counters into dest
//	C.RESET key                 clear a counter in place
//	C.INFO key                  representation, precision, mixer, hasher
//	PING, STATS
//
// Every key holds a serialized counter. Handlers deserialize under the
// store's per-key exclusion, operate on the in-memory counter and write the
// serialized form back, so the counter library itself never needs a lock.
//
// Configuration
// =============
//
// All settings come from the environment with a CARDINAL_ prefix, falling
// back to built-in defaults:
//
//	CARDINAL_PORT              listen port (default 7401)
//	CARDINAL_MAX_CONNECTIONS   concurrent connection cap (default 256)
//	CARDINAL_IDLE_TIMEOUT      per-connection idle timeout (default 5m)
//	CARDINAL_SHUTDOWN_TIMEOUT  graceful-shutdown drain window (default 10s)
//	CARDINAL_PRECISION         counter precision 4..18 (default 12)
//	CARDINAL_MIXER             murmur3-finalizer | wang | numerical-recipes
//	CARDINAL_HASHER            xxhash64 | xxh3 | murmur3
//
// The server holds all counters in memory; there is no persistence layer,
// and no command returns a counter's serialized bytes. cardinal-check
// inspects counter files written with the hyperloglog package's Serialize.
package main

import (
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/rs/zerolog"

	"cardinal.lopezb.com/internal/cardinal/hyperloglog"
)

const (
	envPrefix       = "CARDINAL_"
	configDelimiter = "."
)

type config struct {
	port            int
	maxConnections  int
	idleTimeout     time.Duration
	shutdownTimeout time.Duration

	precision uint8
	mixer     hyperloglog.Mixer
	hasher    hyperloglog.ItemHasher
}

type application struct {
	config  config
	logger  zerolog.Logger
	store   *Store
	router  *Router
	metrics *Metrics

	wg          sync.WaitGroup
	listener    net.Listener
	connLimiter chan struct{}

	// readyCh, when non-nil, is closed once the listener is accepting.
	// Tests use it to avoid polling.
	readyCh chan struct{}
}

// loadConfig builds the runtime configuration from defaults overridden by
// CARDINAL_-prefixed environment variables.
func loadConfig() (config, error) {
	k := koanf.New(configDelimiter)

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"port":             7401,
		"max_connections":  256,
		"idle_timeout":     "5m",
		"shutdown_timeout": "10s",
		"precision":        int(hyperloglog.DefaultPrecision),
		"mixer":            hyperloglog.Murmur3Finalizer.String(),
		"hasher":           hyperloglog.XXHash64.String(),
	}, configDelimiter), nil); err != nil {
		return config{}, fmt.Errorf("loading defaults: %w", err)
	}

	// CARDINAL_MAX_CONNECTIONS=512 overrides "max_connections".
	if err := k.Load(env.Provider(envPrefix, configDelimiter, func(s string) string {
		return toConfigKey(s, envPrefix)
	}), nil); err != nil {
		return config{}, fmt.Errorf("loading environment: %w", err)
	}

	cfg := config{
		port:            k.Int("port"),
		maxConnections:  k.Int("max_connections"),
		idleTimeout:     k.Duration("idle_timeout"),
		shutdownTimeout: k.Duration("shutdown_timeout"),
	}

	p := k.Int("precision")
	if p < hyperloglog.MinPrecision || p > hyperloglog.MaxPrecision {
		return config{}, fmt.Errorf("precision %d: %w", p, hyperloglog.ErrInvalidPrecision)
	}
	cfg.precision = uint8(p)

	mixer, err := hyperloglog.ParseMixer(k.String("mixer"))
	if err != nil {
		return config{}, fmt.Errorf("mixer %q: %w", k.String("mixer"), err)
	}
	cfg.mixer = mixer

	hasher, err := hyperloglog.ParseItemHasher(k.String("hasher"))
	if err != nil {
		return config{}, fmt.Errorf("hasher %q: %w", k.String("hasher"), err)
	}
	cfg.hasher = hasher

	if cfg.maxConnections < 1 {
		return config{}, fmt.Errorf("max_connections must be positive, got %d", cfg.maxConnections)
	}
	return cfg, nil
}

// newCounter creates an empty counter with the server-wide parameters.
func (app *application) newCounter() *hyperloglog.Counter {
	c, err := hyperloglog.NewCounter(app.config.precision, true, app.config.mixer, app.config.hasher)
	if err != nil {
		// The parameters were validated at startup.
		panic(err)
	}
	return c
}

func newApplication(cfg config, logger zerolog.Logger) *application {
	app := &application{
		config:      cfg,
		logger:      logger,
		store:       NewStore(),
		metrics:     NewMetrics(),
		connLimiter: make(chan struct{}, cfg.maxConnections),
	}
	app.router = NewRouter()
	app.router.Handle("PING", app.handlePing)
	app.router.Handle("STATS", app.handleStats)
	app.router.Handle("C.ADD", app.handleCounterAdd)
	app.router.Handle("C.COUNT", app.handleCounterCount)
	app.router.Handle("C.ERTLCOUNT", app.handleCounterErtlCount)
	app.router.Handle("C.MERGE", app.handleCounterMerge)
	app.router.Handle("C.RESET", app.handleCounterReset)
	app.router.Handle("C.INFO", app.handleCounterInfo)
	return app
}

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("component", "cardinal-server").Logger()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	app := newApplication(cfg, logger)

	logger.Info().
		Int("port", cfg.port).
		Uint8("precision", cfg.precision).
		Stringer("mixer", cfg.mixer).
		Stringer("hasher", cfg.hasher).
		Msg("configuration loaded")

	if err := app.serve(); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
}
