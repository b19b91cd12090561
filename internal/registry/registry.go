// Package registry provides a global registry for demo games.
// Demos register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/quick/internal/asset"
	"github.com/vovakirdan/quick/internal/config"
	"github.com/vovakirdan/quick/internal/engine"
)

// Demo is a game composed from the engine's public contract.
// Demos never talk to a terminal, a speaker or a database directly; the
// engine they run in provides input, sound and persistence.
type Demo interface {
	// ID returns a unique identifier (e.g., "paddle").
	// Used for CLI commands and save slots.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Assets adds the images the demo refers to by id.
	Assets(lib *asset.Library)

	// FirstScene returns the factory for the opening scene.
	FirstScene() engine.SceneFactory
}

// DemoInfo contains metadata about a registered demo.
type DemoInfo struct {
	ID    string
	Title string
}

// Factory creates a demo tuned by the given difficulty settings.
type Factory func(difficulty config.DifficultyConfig) Demo

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a demo factory to the registry.
// Typically called from a demo's init() function.
// Panics if a demo with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f(config.Default().Difficulty).Title()
}

// List returns information about all registered demos, sorted by ID.
func List() []DemoInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DemoInfo, 0, len(factories))
	for id := range factories {
		result = append(result, DemoInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a demo by its ID.
// Returns an error if the demo ID is not registered.
func Create(id string, difficulty config.DifficultyConfig) (Demo, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown demo %q", id)
	}

	return f(difficulty), nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
