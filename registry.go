package salt

import (
	"reflect"
	"sync"
)

var (
	planCache   = make(map[reflect.Type]*typeFieldPlans)
	planCacheMu sync.RWMutex
)

// getOrBuildPlans returns cached field plans for T, building them on first use.
func getOrBuildPlans[T any]() (*typeFieldPlans, error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	planCacheMu.RLock()
	if cached, ok := planCache[typ]; ok {
		planCacheMu.RUnlock()
		return cached, nil
	}
	planCacheMu.RUnlock()

	// Slow path: build and cache with write-lock
	planCacheMu.Lock()
	defer planCacheMu.Unlock()

	// Double-check pattern
	if cached, ok := planCache[typ]; ok {
		return cached, nil
	}

	built, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}

	planCache[typ] = built
	return built, nil
}

// ResetFields clears the field plan cache.
// This is primarily useful for test isolation.
func ResetFields() {
	planCacheMu.Lock()
	defer planCacheMu.Unlock()
	planCache = make(map[reflect.Type]*typeFieldPlans)
}
