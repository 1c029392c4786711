package push

import (
	"fmt"
	"sync"
)

var (
	instance *Service
	once     sync.Once
	mu       sync.RWMutex
)

// Initialize sets up the global push service instance.
func Initialize(service *Service) {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()
		instance = service
	})
}

// GetService returns the global push service instance, or nil.
func GetService() *Service {
	mu.RLock()
	defer mu.RUnlock()
	return instance
}

// SetServiceForTesting allows setting a custom service instance for testing only.
// It returns an error if the service is already initialized in production.
func SetServiceForTesting(service *Service) error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil && service != nil {
		return fmt.Errorf("push service already initialized")
	}

	instance = service
	return nil
}

// IsInitialized checks if the push service has been initialized.
func IsInitialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return instance != nil
}
