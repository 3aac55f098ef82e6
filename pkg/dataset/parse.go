// Package dataset loads labeled avocado examples from CSV text, either from a
// file under the project data directory or from a Redis list.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Sr31bu/avocado-predictor/pkg/avocado"
)

// ParseRecords reads color,softness,good_to_eat records from r. Blank lines
// are skipped and every field is trimmed before parsing.
func ParseRecords(r io.Reader) ([]avocado.Example, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var examples []avocado.Example
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		ex, err := ParseRecord(record)
		if err != nil {
			var mre *MalformedRecordError
			if errors.As(err, &mre) {
				mre.Line = line
				return nil, mre
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		examples = append(examples, ex)
	}

	return examples, nil
}

// ParseRecord builds an example from one record's fields.
func ParseRecord(fields []string) (avocado.Example, error) {
	if len(fields) != 3 {
		return avocado.Example{}, &MalformedRecordError{Fields: fields}
	}

	color, err := avocado.ParseColor(strings.TrimSpace(fields[0]))
	if err != nil {
		return avocado.Example{}, err
	}
	softness, err := avocado.ParseSoftness(strings.TrimSpace(fields[1]))
	if err != nil {
		return avocado.Example{}, err
	}
	label, err := avocado.ParseGoodToEat(strings.TrimSpace(fields[2]))
	if err != nil {
		return avocado.Example{}, err
	}

	return avocado.Example{Color: color, Softness: softness, Label: label}, nil
}

// FormatRecord is the inverse of ParseRecord for a single example.
func FormatRecord(ex avocado.Example) string {
	return ex.Color.String() + "," + ex.Softness.String() + "," + ex.Label.String()
}
