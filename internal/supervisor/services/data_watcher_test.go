// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

func stubEngine(source string) *recommend.Engine {
	entries := []catalog.Entry{{ID: 1, Title: "Avatar"}}
	return recommend.NewEngine(entries, nil, recommend.DefaultConfig(), recommend.Stats{Source: source})
}

// countingBuild returns builds that fail with err (when set) and counts calls.
func countingBuild(calls *atomic.Int32, err error) BuildFunc {
	return func(context.Context) (*recommend.Engine, error) {
		calls.Add(1)
		if err != nil {
			return nil, err
		}
		return stubEngine("rebuild"), nil
	}
}

func TestNewDataWatcher_RequiresPaths(t *testing.T) {
	t.Parallel()

	if _, err := NewDataWatcher(DataWatcherConfig{}, nil, recommend.NewHolder(nil)); err == nil {
		t.Error("NewDataWatcher() without paths: want error")
	}
}

func TestDataWatcher_ReloadSwapsEngine(t *testing.T) {
	t.Parallel()

	holder := recommend.NewHolder(stubEngine("snapshot"))
	var calls atomic.Int32
	w, err := NewDataWatcher(DataWatcherConfig{Paths: []string{"movies.csv"}}, countingBuild(&calls, nil), holder)
	if err != nil {
		t.Fatalf("NewDataWatcher() error = %v", err)
	}

	if err := w.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if got := holder.Engine().Stats().Source; got != "rebuild" {
		t.Errorf("served engine source = %q, want rebuild", got)
	}
}

func TestDataWatcher_FailedReloadKeepsEngine(t *testing.T) {
	t.Parallel()

	current := stubEngine("snapshot")
	holder := recommend.NewHolder(current)
	buildErr := errors.New("movies.csv: unexpected EOF")
	var calls atomic.Int32
	w, err := NewDataWatcher(DataWatcherConfig{
		Paths:            []string{"movies.csv"},
		FailureThreshold: 2,
		Cooldown:         time.Hour,
	}, countingBuild(&calls, buildErr), holder)
	if err != nil {
		t.Fatalf("NewDataWatcher() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := w.Reload(context.Background()); !errors.Is(err, buildErr) {
			t.Fatalf("Reload() #%d = %v, want %v", i, err, buildErr)
		}
	}
	if holder.Engine() != current {
		t.Error("failed rebuild replaced the served engine")
	}

	// breaker is open: the build is not attempted
	if err := w.Reload(context.Background()); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Reload() after threshold = %v, want ErrOpenState", err)
	}
	if calls.Load() != 2 {
		t.Errorf("build calls = %d, want 2", calls.Load())
	}
}

func TestDataWatcher_CancellationDoesNotTrip(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	w, err := NewDataWatcher(DataWatcherConfig{
		Paths:            []string{"movies.csv"},
		FailureThreshold: 1,
	}, countingBuild(&calls, context.Canceled), recommend.NewHolder(nil))
	if err != nil {
		t.Fatalf("NewDataWatcher() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		_ = w.Reload(context.Background())
	}
	if calls.Load() != 3 {
		t.Errorf("build calls = %d, want 3 (canceled builds must not open the breaker)", calls.Load())
	}
}

func TestDataWatcher_ServeRebuildsOnChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	movies := filepath.Join(dir, "tmdb_5000_movies.csv")
	if err := os.WriteFile(movies, []byte("id,title\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	holder := recommend.NewHolder(stubEngine("snapshot"))
	built := make(chan struct{}, 8)
	build := func(context.Context) (*recommend.Engine, error) {
		built <- struct{}{}
		return stubEngine("rebuild"), nil
	}

	w, err := NewDataWatcher(DataWatcherConfig{
		Paths:       []string{movies},
		Settle:      20 * time.Millisecond,
		MinInterval: 10 * time.Millisecond,
	}, build, holder)
	if err != nil {
		t.Fatalf("NewDataWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- w.Serve(ctx) }()

	// the watch is installed asynchronously, so keep touching the file
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
wait:
	for {
		select {
		case <-built:
			break wait
		case <-tick.C:
			if err := os.WriteFile(movies, []byte("id,title\n1,Avatar\n"), 0o600); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no rebuild after file change")
		}
	}

	// the swap follows the build
	swapDeadline := time.Now().Add(2 * time.Second)
	for holder.Engine().Stats().Source != "rebuild" {
		if time.Now().After(swapDeadline) {
			t.Fatal("rebuilt engine was never served")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestDataWatcher_IgnoresOtherFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewDataWatcher(DataWatcherConfig{Paths: []string{filepath.Join(dir, "movies.csv")}}, nil, recommend.NewHolder(nil))
	if err != nil {
		t.Fatalf("NewDataWatcher() error = %v", err)
	}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to watched file", fsnotify.Event{Name: filepath.Join(dir, "movies.csv"), Op: fsnotify.Write}, true},
		{"rename onto watched file", fsnotify.Event{Name: filepath.Join(dir, "movies.csv"), Op: fsnotify.Rename}, true},
		{"create watched file", fsnotify.Event{Name: filepath.Join(dir, "movies.csv"), Op: fsnotify.Create}, true},
		{"write to neighbour", fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Write}, false},
		{"chmod of watched file", fsnotify.Event{Name: filepath.Join(dir, "movies.csv"), Op: fsnotify.Chmod}, false},
	}
	for _, tt := range tests {
		if got := w.relevant(tt.event); got != tt.want {
			t.Errorf("%s: relevant() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
