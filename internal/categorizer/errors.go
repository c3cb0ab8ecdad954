package categorizer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory is returned when a category name is not part of the
	// fixed enumeration.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrLearnCollision is returned by Learn when the token already belongs
	// to a different category.
	ErrLearnCollision = errors.New("token already belongs to another category")

	// ErrEmptyToken is returned by Learn when nothing is left after cleaning.
	ErrEmptyToken = errors.New("token is empty after cleaning")
)

// StoreInconsistencyError reports a table entry that cannot be loaded.
type StoreInconsistencyError struct {
	Table    string
	Category string
	Entry    string
	Err      error
}

func (e *StoreInconsistencyError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("inconsistent %s table: category %q entry %q: %v", e.Table, e.Category, e.Entry, e.Err)
	}
	return fmt.Sprintf("inconsistent %s table: category %q: %v", e.Table, e.Category, e.Err)
}

func (e *StoreInconsistencyError) Unwrap() error {
	return e.Err
}
