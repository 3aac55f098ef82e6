package learning

import (
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/Sr31bu/avocado-predictor/pkg/avocado"
)

// Predictor scores whether an avocado is good to eat from its color or its
// softness. Probability tables are dense and indexed by enumeration ordinal,
// so every (label, value) pair is defined after Fit, unseen pairs as 0.0.
//
// A Predictor is not safe for concurrent use; Fit must return before any
// prediction starts.
type Predictor struct {
	prior         [avocado.NumLabels]float64
	colorGiven    [avocado.NumLabels][avocado.NumColors]float64
	softnessGiven [avocado.NumLabels][avocado.NumSoftness]float64

	counts      [avocado.NumLabels]int
	examples    int
	fitted      bool
	lastTrained time.Time
}

// LabelScore pairs a label with its score for one query.
type LabelScore struct {
	Label avocado.GoodToEat `json:"label"`
	Score float64           `json:"score"`
}

// NewPredictor creates an empty, unfitted predictor
func NewPredictor() *Predictor {
	return &Predictor{}
}

// Fit counts labels and (label, feature) pairs over examples and normalizes
// them into the prior and the two conditional tables. It returns the receiver
// so construction and fitting can be chained. Calling Fit again discards the
// previous counts.
func (p *Predictor) Fit(examples []avocado.Example) (*Predictor, error) {
	if len(examples) == 0 {
		return p, ErrEmptyDataset
	}

	var (
		prior         [avocado.NumLabels]float64
		colorGiven    [avocado.NumLabels][avocado.NumColors]float64
		softnessGiven [avocado.NumLabels][avocado.NumSoftness]float64
		counts        [avocado.NumLabels]int
	)

	for _, ex := range examples {
		if err := checkExample(ex); err != nil {
			return p, err
		}
		prior[ex.Label]++
		colorGiven[ex.Label][ex.Color]++
		softnessGiven[ex.Label][ex.Softness]++
		counts[ex.Label]++
	}

	normalize(prior[:])
	for l := range prior {
		// Rows of labels absent from the data stay all zero.
		if counts[l] == 0 {
			continue
		}
		normalize(colorGiven[l][:])
		normalize(softnessGiven[l][:])
	}

	p.prior = prior
	p.colorGiven = colorGiven
	p.softnessGiven = softnessGiven
	p.counts = counts
	p.examples = len(examples)
	p.fitted = true
	p.lastTrained = time.Now()

	return p, nil
}

// normalize scales the row so its weights sum to 1. All-zero rows are left as is.
func normalize(pmf []float64) {
	total := floats.Sum(pmf)
	if total == 0 {
		return
	}
	floats.Scale(1/total, pmf)
}

func checkExample(ex avocado.Example) error {
	switch {
	case int(ex.Color) >= avocado.NumColors:
		return &avocado.InvalidCategoryError{Category: "color", Value: ex.Color.String()}
	case int(ex.Softness) >= avocado.NumSoftness:
		return &avocado.InvalidCategoryError{Category: "softness", Value: ex.Softness.String()}
	case int(ex.Label) >= avocado.NumLabels:
		return &avocado.InvalidCategoryError{Category: "good_to_eat", Value: ex.Label.String()}
	}
	return nil
}

// Fitted reports whether Fit has completed successfully.
func (p *Predictor) Fitted() bool {
	return p.fitted
}

// Prior returns P(label). Values outside the enumeration have probability 0.
func (p *Predictor) Prior(label avocado.GoodToEat) float64 {
	if int(label) >= avocado.NumLabels {
		return 0
	}
	return p.prior[label]
}

// ColorGivenLabel returns P(color | label).
func (p *Predictor) ColorGivenLabel(label avocado.GoodToEat, color avocado.Color) float64 {
	if int(label) >= avocado.NumLabels || int(color) >= avocado.NumColors {
		return 0
	}
	return p.colorGiven[label][color]
}

// SoftnessGivenLabel returns P(softness | label).
func (p *Predictor) SoftnessGivenLabel(label avocado.GoodToEat, softness avocado.Softness) float64 {
	if int(label) >= avocado.NumLabels || int(softness) >= avocado.NumSoftness {
		return 0
	}
	return p.softnessGiven[label][softness]
}

// LabelCount returns how many training examples carried label.
func (p *Predictor) LabelCount(label avocado.GoodToEat) int {
	if int(label) >= avocado.NumLabels {
		return 0
	}
	return p.counts[label]
}

// Tables is a copy of the fitted probability tables.
type Tables struct {
	Examples           int                                             `json:"examples"`
	LastTrained        time.Time                                       `json:"last_trained"`
	LabelCounts        [avocado.NumLabels]int                          `json:"label_counts"`
	Prior              [avocado.NumLabels]float64                      `json:"prior"`
	ColorGivenLabel    [avocado.NumLabels][avocado.NumColors]float64   `json:"color_given_label"`
	SoftnessGivenLabel [avocado.NumLabels][avocado.NumSoftness]float64 `json:"softness_given_label"`
}

// Tables returns a snapshot of the fitted tables.
func (p *Predictor) Tables() Tables {
	return Tables{
		Examples:           p.examples,
		LastTrained:        p.lastTrained,
		LabelCounts:        p.counts,
		Prior:              p.prior,
		ColorGivenLabel:    p.colorGiven,
		SoftnessGivenLabel: p.softnessGiven,
	}
}
