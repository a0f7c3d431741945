package utils

import "sync"

var mu sync.Mutex

// ExecuteWithMutex serializes access to GDAL, which is not safe for
// concurrent dataset reads.
func ExecuteWithMutex(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	fn()
}
