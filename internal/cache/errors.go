package cache

import (
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Sahillather002/challenge-fun-app/internal/domain"
	"github.com/Sahillather002/challenge-fun-app/internal/metrics"
)

// Error is returned by every Store operation that fails. Kind is one of
// domain.ErrNotFound, domain.ErrSerialization, domain.ErrDeserialization or
// domain.ErrStoreUnavailable; errors.Is matches both Kind and the cause.
type Error struct {
	Op   string
	Key  string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cache %s %q: %v", e.Op, e.Key, e.Kind)
	}
	return fmt.Sprintf("cache %s %q: %v: %v", e.Op, e.Key, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// IsNotFound reports whether err is a cache miss.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func newError(op, key string, kind, cause error) *Error {
	e := &Error{Op: op, Key: key, Kind: kind, Err: cause}
	if kind != domain.ErrNotFound {
		metrics.CacheErrors.WithLabelValues(op, kindLabel(kind)).Inc()
	}
	return e
}

// classify maps a go-redis error onto the error taxonomy. redis.Nil is the
// only miss signal; everything else is a transport failure.
func classify(op, key string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, redis.Nil) {
		return newError(op, key, domain.ErrNotFound, nil)
	}
	return newError(op, key, domain.ErrStoreUnavailable, err)
}

func kindLabel(kind error) string {
	switch kind {
	case domain.ErrSerialization:
		return "serialization"
	case domain.ErrDeserialization:
		return "deserialization"
	case domain.ErrStoreUnavailable:
		return "unavailable"
	default:
		return "other"
	}
}
