// Package avocado defines the categorical attributes observed on an avocado
// and the labeled training example built from them.
package avocado

import (
	"strconv"
	"strings"
)

// Color is the observed skin color of an avocado.
type Color uint8

// Color values, in ordinal order.
const (
	Black Color = iota
	Brown
	Green
)

// NumColors is the number of Color members.
const NumColors = 3

var colorNames = [NumColors]string{"BLACK", "BROWN", "GREEN"}

// Softness is how the avocado feels when pressed.
type Softness uint8

// Softness values, in ordinal order.
const (
	Mushy Softness = iota
	Soft
	Tender
	Hard
)

// NumSoftness is the number of Softness members.
const NumSoftness = 4

var softnessNames = [NumSoftness]string{"MUSHY", "SOFT", "TENDER", "HARD"}

// GoodToEat is the binary label predicted by the model.
type GoodToEat uint8

// GoodToEat values, in ordinal order.
const (
	Yes GoodToEat = iota
	No
)

// NumLabels is the number of GoodToEat members.
const NumLabels = 2

var labelNames = [NumLabels]string{"YES", "NO"}

func (c Color) String() string {
	if int(c) < NumColors {
		return colorNames[c]
	}
	return "Color(" + strconv.Itoa(int(c)) + ")"
}

func (s Softness) String() string {
	if int(s) < NumSoftness {
		return softnessNames[s]
	}
	return "Softness(" + strconv.Itoa(int(s)) + ")"
}

func (g GoodToEat) String() string {
	if int(g) < NumLabels {
		return labelNames[g]
	}
	return "GoodToEat(" + strconv.Itoa(int(g)) + ")"
}

// Colors returns every Color in ordinal order.
func Colors() []Color {
	return []Color{Black, Brown, Green}
}

// Softnesses returns every Softness in ordinal order.
func Softnesses() []Softness {
	return []Softness{Mushy, Soft, Tender, Hard}
}

// Labels returns every GoodToEat value in ordinal order.
func Labels() []GoodToEat {
	return []GoodToEat{Yes, No}
}

// ParseColor matches s case-insensitively against the Color member names.
func ParseColor(s string) (Color, error) {
	return parse("color", s, colorNames[:], Colors())
}

// ParseSoftness matches s case-insensitively against the Softness member names.
func ParseSoftness(s string) (Softness, error) {
	return parse("softness", s, softnessNames[:], Softnesses())
}

// ParseGoodToEat matches s case-insensitively against the GoodToEat member names.
func ParseGoodToEat(s string) (GoodToEat, error) {
	return parse("good_to_eat", s, labelNames[:], Labels())
}

func parse[T Color | Softness | GoodToEat](category, s string, names []string, members []T) (T, error) {
	for i, name := range names {
		if strings.EqualFold(s, name) {
			return members[i], nil
		}
	}
	var zero T
	return zero, &InvalidCategoryError{Category: category, Value: s}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Softness) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Softness) UnmarshalText(b []byte) error {
	v, err := ParseSoftness(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (g GoodToEat) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GoodToEat) UnmarshalText(b []byte) error {
	v, err := ParseGoodToEat(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// Example is one labeled observation from the training set.
type Example struct {
	Color    Color     `json:"color" yaml:"color"`
	Softness Softness  `json:"softness" yaml:"softness"`
	Label    GoodToEat `json:"good_to_eat" yaml:"good_to_eat"`
}
