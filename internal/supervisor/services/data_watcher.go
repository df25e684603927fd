// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// BuildFunc builds a complete engine from the catalog sources.
type BuildFunc func(ctx context.Context) (*recommend.Engine, error)

// Reload outcomes recorded in metrics.
const (
	ReloadSuccess  = "success"
	ReloadFailure  = "failure"
	ReloadRejected = "rejected"
)

// DataWatcherConfig configures the data watcher.
type DataWatcherConfig struct {
	// Paths are the catalog files to watch.
	Paths []string

	// Settle is the quiet period after the last change before a rebuild,
	// so that both CSV files can finish being replaced.
	// Default: 500ms
	Settle time.Duration

	// MinInterval is the minimum time between rebuilds.
	// Default: 10s
	MinInterval time.Duration

	// FailureThreshold is the number of consecutive failed rebuilds that
	// opens the breaker.
	// Default: 3
	FailureThreshold uint32

	// Cooldown is how long the open breaker rejects rebuilds.
	// Default: 5m
	Cooldown time.Duration
}

func (c DataWatcherConfig) withDefaults() DataWatcherConfig {
	if c.Settle <= 0 {
		c.Settle = 500 * time.Millisecond
	}
	if c.MinInterval <= 0 {
		c.MinInterval = 10 * time.Second
	}
	if c.FailureThreshold == 0 {
		c.FailureThreshold = 3
	}
	if c.Cooldown <= 0 {
		c.Cooldown = 5 * time.Minute
	}
	return c
}

// DataWatcher rebuilds the engine when the catalog files change and swaps
// it into the holder the API serves from. A failed rebuild leaves the
// current engine in place.
type DataWatcher struct {
	config  DataWatcherConfig
	build   BuildFunc
	holder  *recommend.Holder
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[*recommend.Engine]
	watched map[string]struct{}
	logger  zerolog.Logger
}

// NewDataWatcher creates a watcher over cfg.Paths.
func NewDataWatcher(cfg DataWatcherConfig, build BuildFunc, holder *recommend.Holder) (*DataWatcher, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("data watcher: no paths to watch")
	}
	cfg = cfg.withDefaults()

	watched := make(map[string]struct{}, len(cfg.Paths))
	for _, p := range cfg.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("data watcher: resolve %s: %w", p, err)
		}
		watched[abs] = struct{}{}
	}

	w := &DataWatcher{
		config:  cfg,
		build:   build,
		holder:  holder,
		limiter: rate.NewLimiter(rate.Every(cfg.MinInterval), 1),
		watched: watched,
		logger:  logging.WithComponent("data-watcher"),
	}
	w.breaker = w.newBreaker()
	return w, nil
}

func (w *DataWatcher) newBreaker() *gobreaker.CircuitBreaker[*recommend.Engine] {
	const name = "data-watcher"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[*recommend.Engine](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     w.config.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= w.config.FailureThreshold
		},
		// shutdown interrupting a rebuild is not a data failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			w.logger.Warn().
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("Rebuild circuit breaker state changed")
			metrics.RecordCircuitBreakerTransition(name, stateToString(from), stateToString(to), stateToInt(to))
		},
	})
}

// Serve implements suture.Service.
func (w *DataWatcher) Serve(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("data watcher: %w", err)
	}
	defer fsw.Close()

	// Directories are watched because editors and copy tools replace files
	// by rename, which drops a watch on the file itself.
	dirs := make(map[string]struct{})
	for p := range w.watched {
		dirs[filepath.Dir(p)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("data watcher: watch %s: %w", dir, err)
		}
	}
	w.logger.Info().Int("files", len(w.watched)).Dur("min_interval", w.config.MinInterval).Msg("Watching catalog files")

	settle := time.NewTimer(w.config.Settle)
	if !settle.Stop() {
		<-settle.C
	}
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return errors.New("data watcher: event channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Catalog file changed")
			settle.Reset(w.config.Settle)

		case err, ok := <-fsw.Errors:
			if !ok {
				return errors.New("data watcher: error channel closed")
			}
			w.logger.Warn().Err(err).Msg("File watcher error")

		case <-settle.C:
			if err := w.limiter.Wait(ctx); err != nil {
				return ctx.Err()
			}
			_ = w.Reload(ctx) //nolint:errcheck // outcome is logged and counted
		}
	}
}

func (w *DataWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.watched[abs]
	return ok
}

// Reload rebuilds the engine through the breaker and swaps it in on
// success.
func (w *DataWatcher) Reload(ctx context.Context) error {
	start := time.Now()
	eng, err := w.breaker.Execute(func() (*recommend.Engine, error) {
		return w.build(ctx)
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordReload(ReloadRejected)
		w.logger.Warn().Err(err).Msg("Rebuild skipped, breaker open; serving previous catalog")
		return err

	case err != nil:
		metrics.RecordReload(ReloadFailure)
		w.logger.Error().Err(err).
			Uint32("consecutive_failures", w.breaker.Counts().ConsecutiveFailures).
			Msg("Rebuild failed; serving previous catalog")
		return err
	}

	w.holder.Swap(eng)
	metrics.RecordReload(ReloadSuccess)
	stats := eng.Stats()
	w.logger.Info().
		Int("entries", stats.Entries).
		Int("vocabulary", stats.Vocabulary).
		Dur("duration", time.Since(start)).
		Msg("Catalog reloaded")
	return nil
}

// String identifies the service in supervisor events.
func (w *DataWatcher) String() string {
	return "data-watcher"
}

func stateToInt(state gobreaker.State) int {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
