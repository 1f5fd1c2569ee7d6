package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means no row matched the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique constraint rejected the write.
	ErrDuplicate = errors.New("duplicate record")
	// ErrUnavailable means the database could not be reached.
	ErrUnavailable = errors.New("database unavailable")
)

// mapError converts raw gorm/driver errors into the package taxonomy so that
// callers never see a database error directly.
func mapError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isDuplicate(err):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	case isUnavailable(err):
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func isDuplicate(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "UNIQUE constraint")
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "connection reset") ||
		strings.Contains(s, "no such host")
}
