// Package store owns the in-memory shift collection and keeps it in sync with storage.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/taxometer/backend/internal/application/adapter"
	"github.com/taxometer/backend/internal/domain/entity"
)

// DefaultFlushTimeout bounds the final save attempted when the writer stops.
const DefaultFlushTimeout = 5 * time.Second

// ShiftStore holds the shift collection for the single active user.
//
// Reads are served from memory. Writes replace the whole collection and are
// persisted by a single writer (Run) that always saves the latest snapshot,
// so concurrent edits coalesce instead of racing each other to storage.
type ShiftStore struct {
	gateway      adapter.ShiftGateway
	key          string
	flushTimeout time.Duration

	mu      sync.RWMutex
	shifts  []entity.Shift
	loaded  bool
	version uint64

	writeMu sync.Mutex
	saved   uint64

	notify chan struct{}
}

// Config holds configuration for the shift store.
type Config struct {
	Key          string
	FlushTimeout time.Duration
}

// NewShiftStore creates a new store reading and writing through the given gateway.
func NewShiftStore(gateway adapter.ShiftGateway, config Config) *ShiftStore {
	flushTimeout := config.FlushTimeout
	if flushTimeout <= 0 {
		flushTimeout = DefaultFlushTimeout
	}

	return &ShiftStore{
		gateway:      gateway,
		key:          config.Key,
		flushTimeout: flushTimeout,
		shifts:       []entity.Shift{},
		notify:       make(chan struct{}, 1),
	}
}

// Load reads the collection from storage. A failing backend is logged and
// leaves the collection empty; either way the store counts as loaded afterwards.
func (s *ShiftStore) Load(ctx context.Context) {
	shifts, err := s.gateway.Load(ctx, s.key)
	if err != nil {
		slog.Error("Failed to load shift collection, starting empty",
			"key", s.key,
			"error", err,
		)
		shifts = nil
	}

	s.mu.Lock()
	s.shifts = cloneShifts(shifts)
	s.loaded = true
	s.saved = s.version
	s.mu.Unlock()

	slog.Info("Shift collection loaded", "key", s.key, "count", len(shifts))
}

// IsLoaded reports whether Load has completed. It distinguishes
// "not loaded yet" from "loaded and empty".
func (s *ShiftStore) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Current returns a snapshot of the collection. Callers may modify it freely.
func (s *ShiftStore) Current() []entity.Shift {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneShifts(s.shifts)
}

// ReplaceAll replaces the whole collection and schedules a save.
func (s *ShiftStore) ReplaceAll(records []entity.Shift) {
	s.Modify(func([]entity.Shift) ([]entity.Shift, bool) {
		return records, true
	})
}

// Modify atomically replaces the collection with fn's result and schedules a save.
// fn receives a snapshot it may modify; returning false leaves the collection untouched.
func (s *ShiftStore) Modify(fn func(current []entity.Shift) ([]entity.Shift, bool)) {
	s.mu.Lock()
	next, changed := fn(cloneShifts(s.shifts))
	if !changed {
		s.mu.Unlock()
		return
	}
	s.shifts = cloneShifts(next)
	s.version++
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
		// A save is already pending and will pick up this snapshot.
	}
}

// Run persists scheduled snapshots until ctx is cancelled, then flushes once more.
func (s *ShiftStore) Run(ctx context.Context) {
	slog.Info("Shift writer started", "key", s.key)

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), s.flushTimeout)
			if err := s.Flush(flushCtx); err != nil {
				slog.Error("Final shift flush failed", "key", s.key, "error", err)
			}
			cancel()
			slog.Info("Shift writer shutting down")
			return
		case <-s.notify:
			if err := s.Flush(ctx); err != nil {
				slog.Error("Failed to save shift collection", "key", s.key, "error", err)
			}
		}
	}
}

// Flush saves the current snapshot if it has not been saved yet.
// A failed save is not retried; the next change schedules a new one.
func (s *ShiftStore) Flush(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	version := s.version
	pending := version != s.saved
	snapshot := cloneShifts(s.shifts)
	s.mu.RUnlock()

	if !pending {
		return nil
	}

	err := s.gateway.Save(ctx, s.key, snapshot)

	s.mu.Lock()
	if version > s.saved {
		s.saved = version
	}
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to save shift collection: %w", err)
	}

	slog.Debug("Shift collection saved", "key", s.key, "count", len(snapshot))
	return nil
}

func cloneShifts(shifts []entity.Shift) []entity.Shift {
	out := make([]entity.Shift, len(shifts))
	for i, shift := range shifts {
		out[i] = shift.Clone()
	}
	return out
}
