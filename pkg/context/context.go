package context

import "sync"

var (
	once  sync.Once
	mu    sync.RWMutex
	table map[string]bool
)

func storage() map[string]bool {
	once.Do(func() {
		table = make(map[string]bool)
	})

	return table
}

// Get reports the switch stored under key. A key that was never set
// reads as false.
func Get(key string) bool {
	t := storage()

	mu.RLock()
	defer mu.RUnlock()

	return t[key]
}

// Set inserts or overwrites the switch stored under key. The value is
// visible to every Get that starts after Set returns.
func Set(key string, value bool) {
	t := storage()

	mu.Lock()
	defer mu.Unlock()

	t[key] = value
}

// Apply sets every switch in m.
func Apply(m map[string]bool) {
	t := storage()

	mu.Lock()
	defer mu.Unlock()

	for k, v := range m {
		t[k] = v
	}
}

// Snapshot returns a copy of the switch table. Mutating the copy does
// not affect the table.
func Snapshot() map[string]bool {
	t := storage()

	mu.RLock()
	defer mu.RUnlock()

	m := make(map[string]bool, len(t))

	for k, v := range t {
		m[k] = v
	}

	return m
}

// Reset removes every switch.
func Reset() {
	t := storage()

	mu.Lock()
	defer mu.Unlock()

	for k := range t {
		delete(t, k)
	}
}
