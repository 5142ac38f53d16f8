package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ObjectFactory builds a fresh migration object instance. Instances are not
// safe for concurrent runs, so the scheduler always goes through
// CreateObject; GetObject serves inspection only.
type ObjectFactory func() MigrationObject

type objectCacheKey struct {
	objectID string
	mode     Mode
}

type ObjectRegistry struct {
	mu        sync.RWMutex
	factories map[string]ObjectFactory
	order     []string
	cache     map[objectCacheKey]MigrationObject
}

func NewObjectRegistry() *ObjectRegistry {
	return &ObjectRegistry{
		factories: make(map[string]ObjectFactory),
		cache:     make(map[objectCacheKey]MigrationObject),
	}
}

func (r *ObjectRegistry) Register(factory ObjectFactory) error {
	if factory == nil {
		return fmt.Errorf("core: object factory is nil")
	}
	probe := factory()
	if probe == nil {
		return fmt.Errorf("core: object factory produced nil object")
	}
	id := strings.TrimSpace(probe.ObjectID())
	if id == "" {
		return fmt.Errorf("core: object id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("core: migration object already registered: %s", id)
	}
	r.factories[id] = factory
	r.order = append(r.order, id)
	return nil
}

// CreateObject returns a fresh instance for execution.
func (r *ObjectRegistry) CreateObject(objectID string) (MigrationObject, error) {
	id := strings.TrimSpace(objectID)
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, objectNotFoundError(objectID)
	}
	return factory(), nil
}

// GetObject returns the shared inspection instance for an (objectID, mode)
// pair, creating and caching it on first use.
func (r *ObjectRegistry) GetObject(objectID string, mode Mode) (MigrationObject, error) {
	id := strings.TrimSpace(objectID)
	key := objectCacheKey{objectID: id, mode: mode}

	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	instance, err := r.CreateObject(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.cache[key]; ok {
		return existing, nil
	}
	r.cache[key] = instance
	return instance, nil
}

func (r *ObjectRegistry) ClearCache() {
	r.mu.Lock()
	r.cache = make(map[objectCacheKey]MigrationObject)
	r.mu.Unlock()
}

// IDs lists registered object ids in registration order.
func (r *ObjectRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// SortedIDs lists registered object ids lexicographically.
func (r *ObjectRegistry) SortedIDs() []string {
	ids := r.IDs()
	sort.Strings(ids)
	return ids
}

func (r *ObjectRegistry) Has(objectID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[strings.TrimSpace(objectID)]
	return ok
}
