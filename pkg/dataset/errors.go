package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedRecord is matched by every *MalformedRecordError.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrMissingData is matched by every *MissingDataError.
	ErrMissingData = errors.New("missing data")
)

// MalformedRecordError reports a record that does not hold exactly three fields.
type MalformedRecordError struct {
	Line   int
	Fields []string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: expected three values but got %d [%s]",
		e.Line, len(e.Fields), strings.Join(e.Fields, ","))
}

// Is reports whether target is ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// MissingDataError reports an absent dataset directory, file or key.
type MissingDataError struct {
	Path string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("dataset %s does not exist", e.Path)
}

// Is reports whether target is ErrMissingData.
func (e *MissingDataError) Is(target error) bool {
	return target == ErrMissingData
}
