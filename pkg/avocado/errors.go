package avocado

import (
	"errors"
	"fmt"
)

// ErrInvalidCategory is matched by every *InvalidCategoryError.
var ErrInvalidCategory = errors.New("invalid category")

// InvalidCategoryError reports a string that names no member of an enumeration.
type InvalidCategoryError struct {
	Category string
	Value    string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Category, e.Value)
}

// Is reports whether target is ErrInvalidCategory.
func (e *InvalidCategoryError) Is(target error) bool {
	return target == ErrInvalidCategory
}
