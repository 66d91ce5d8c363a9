package gqlpager

import "fmt"

const (
	MaxLimit     = 100
	DefaultLimit = 10
)

// IsNormalizedLimitMax clamps a requested page size into (0, maxLimit].
// Non-positive sizes fall back to DefaultLimit. The boolean reports whether
// the requested size was kept as is.
func IsNormalizedLimitMax(limit int, maxLimit int) (int, bool) {
	if limit <= 0 {
		return min(DefaultLimit, maxLimit), false
	} else if limit > maxLimit {
		return maxLimit, false
	}

	return limit, true
}

func NormalizeLimitMax(limit int, maxLimit int) int {
	ret, _ := IsNormalizedLimitMax(limit, maxLimit)
	return ret
}

func NormalizeLimit(limit int) int {
	return NormalizeLimitMax(limit, MaxLimit)
}

// pageSize normalizes a `first` or `last` argument. A missing argument
// reads a default sized page, zero reads an empty one.
func pageSize(arg string, n *int, maxLimit int) (int, error) {
	switch {
	case n == nil:
		return NormalizeLimitMax(0, maxLimit), nil
	case *n < 0:
		return 0, fmt.Errorf("`%s` must not be negative", arg)
	case *n == 0:
		return 0, nil
	default:
		return NormalizeLimitMax(*n, maxLimit), nil
	}
}
