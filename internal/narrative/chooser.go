package narrative

import (
	"math/rand"
	"sync"
	"time"

	"gopaired/ports"
)

// RandomChooser returns a uniform chooser seeded with seed. A zero seed uses
// the current time. The returned chooser is safe for concurrent use.
func RandomChooser(seed int64) ports.Chooser {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(seed))
	return func(n int) int {
		if n <= 1 {
			return 0
		}
		mu.Lock()
		defer mu.Unlock()
		return rng.Intn(n)
	}
}

// FixedChooser always picks index i (clamped to the valid range)
func FixedChooser(i int) ports.Chooser {
	return func(n int) int {
		switch {
		case n <= 0 || i < 0:
			return 0
		case i >= n:
			return n - 1
		default:
			return i
		}
	}
}

// pick applies choose to options, guarding against out of range answers
func pick(choose ports.Chooser, options []string) string {
	i := choose(len(options))
	if i < 0 || i >= len(options) {
		i = 0
	}
	return options[i]
}
