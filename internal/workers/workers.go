package workers

import (
	"os"
	"runtime"
	"strconv"
)

// OverrideEnv pins the worker count when set to a positive integer.
const OverrideEnv = "TITLE_FETCH_WORKERS"

// ioMultiplier is the workers-per-CPU ratio for network-bound tasks.
const ioMultiplier = 2.0

// Count returns multiplier workers per available CPU, at least one and at most
// limit (0 means no limit). OverrideEnv takes precedence over the calculation.
func Count(multiplier float64, limit int) int {
	if n, ok := override(); ok {
		return capAt(n, limit)
	}

	n := int(float64(runtime.GOMAXPROCS(0)) * multiplier)
	if n < 1 {
		n = 1
	}
	return capAt(n, limit)
}

// ForIO returns the worker count for network- or disk-bound tasks.
func ForIO(limit int) int {
	return Count(ioMultiplier, limit)
}

func override() (int, bool) {
	v := os.Getenv(OverrideEnv)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func capAt(n, limit int) int {
	if limit > 0 && n > limit {
		return limit
	}
	return n
}
