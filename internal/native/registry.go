package native

import (
	"errors"
	"sort"
	"sync"

	"github.com/gogpu/d2d/internal/com"
)

// SoftwareLibrary is the name of the built-in CPU engine.
const SoftwareLibrary = "software"

// ErrLibraryNotFound is returned by Open for names that are not registered.
var ErrLibraryNotFound = errors.New("native: rendering library not found")

// Library is a loaded engine.
type Library interface {
	CreateFactory(typ FactoryType, options FactoryOptions) (Factory, com.Status)
}

// LibraryLoader loads an engine.
type LibraryLoader func() (Library, error)

var (
	registryMu sync.RWMutex
	libraries  = map[string]LibraryLoader{
		SoftwareLibrary: func() (Library, error) { return softwareLibrary{}, nil },
	}
)

// Register registers a library loader under name, replacing any previous
// registration.
func Register(name string, load LibraryLoader) {
	registryMu.Lock()
	defer registryMu.Unlock()
	libraries[name] = load
}

// Unregister removes a library from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(libraries, name)
}

// Available returns the sorted names of registered libraries.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(libraries))
	for name := range libraries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a library with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := libraries[name]
	return ok
}

// Open loads the library registered under name.
func Open(name string) (Library, error) {
	registryMu.RLock()
	load, ok := libraries[name]
	registryMu.RUnlock()
	if !ok {
		return nil, ErrLibraryNotFound
	}
	return load()
}

type softwareLibrary struct{}

func (softwareLibrary) CreateFactory(typ FactoryType, options FactoryOptions) (Factory, com.Status) {
	if typ != FactoryTypeSingleThreaded && typ != FactoryTypeMultiThreaded {
		return nil, com.InvalidArg
	}
	if options.DebugLevel > DebugLevelInformation {
		return nil, com.InvalidArg
	}
	return newFactory(typ, options), com.OK
}
