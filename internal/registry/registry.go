// Package registry provides a global registry of display backends.
// Backends register themselves in init() functions, allowing the CLI to
// discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddleball/internal/config"
)

// Env is everything a backend needs to start a game.
type Env struct {
	Config config.Config
	Seed   int64 // 0 means time based
	Logger *log.Logger
}

// Runner plays one game until the player quits or ctx is done.
type Runner func(ctx context.Context, env Env) error

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name  string
	Title string

	// OwnsTerminal is set for backends that draw into the controlling
	// terminal, where log output would corrupt the picture.
	OwnsTerminal bool
}

type entry struct {
	info BackendInfo
	run  Runner
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a backend to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(info BackendInfo, run Runner) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[info.Name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", info.Name))
	}
	backends[info.Name] = entry{info: info, run: run}
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for _, e := range backends {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns a backend by name.
// Returns an error if the name is not registered.
func Lookup(name string) (BackendInfo, Runner, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := backends[name]
	if !ok {
		return BackendInfo{}, nil, fmt.Errorf("registry: unknown backend %q", name)
	}
	return e.info, e.run, nil
}

// reset clears the registry; tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	backends = make(map[string]entry)
}
