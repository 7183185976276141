// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/desert-dash/internal/config"
	"github.com/vovakirdan/desert-dash/internal/core"
	"github.com/vovakirdan/desert-dash/internal/storage"
)

// Frontend presents a session: it owns input, timing, rendering and audio.
type Frontend interface {
	// ID returns a unique identifier (e.g., "window", "tui").
	// Used for the --frontend flag and the run log.
	ID() string

	// Title returns a human-readable description for listings.
	Title() string

	// Run loads assets, plays one session and returns when the player
	// closes the frontend. Asset failures are returned as errors.
	Run(opts Options) error
}

// Options is everything a frontend needs to run a session.
type Options struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Runs    *storage.Store // Nil disables the run log
	Debug   bool           // Show frame statistics
}

// RecordRun stores a finished run in the run log, if one is open.
// Failures are logged and otherwise ignored.
func (o Options) RecordRun(frontend string, st core.GameState, played time.Duration) {
	if o.Runs == nil {
		return
	}

	reason := storage.EndClosed
	if st.GameOver {
		reason = storage.EndCrash
	}

	id, err := o.Runs.SaveRun(storage.Run{
		Frontend:  frontend,
		Score:     st.Score,
		Duration:  played,
		EndReason: reason,
		Seed:      o.Runtime.Seed,
	})
	if err != nil {
		if o.Logger != nil {
			o.Logger.Warn("could not record run", "error", err)
		}
		return
	}
	if o.Logger != nil {
		o.Logger.Debug("run recorded", "id", id, "score", st.Score, "reason", reason)
	}
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
