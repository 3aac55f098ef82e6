package learning

import (
	"fmt"

	"github.com/Sr31bu/avocado-predictor/pkg/avocado"
)

// PredictColorProba scores each query color against both labels, returning
// one (YES, NO) pair per query.
//
// The evidence term P(color) is the empirical frequency of the color within
// queries, not within the training data, so the scores are only comparable
// inside a single batch and are not calibrated probabilities.
func (p *Predictor) PredictColorProba(queries []avocado.Color) ([][]LabelScore, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	return scoreBatch(p.prior, queries, avocado.NumColors, func(l avocado.GoodToEat, c avocado.Color) float64 {
		return p.colorGiven[l][c]
	})
}

// PredictSoftnessProba is PredictColorProba for softness observations.
func (p *Predictor) PredictSoftnessProba(queries []avocado.Softness) ([][]LabelScore, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	return scoreBatch(p.prior, queries, avocado.NumSoftness, func(l avocado.GoodToEat, s avocado.Softness) float64 {
		return p.softnessGiven[l][s]
	})
}

// PredictColor picks the higher scoring label for each query color.
func (p *Predictor) PredictColor(queries []avocado.Color) ([]avocado.GoodToEat, error) {
	scores, err := p.PredictColorProba(queries)
	if err != nil {
		return nil, err
	}
	return decide(scores), nil
}

// PredictSoftness picks the higher scoring label for each query softness.
func (p *Predictor) PredictSoftness(queries []avocado.Softness) ([]avocado.GoodToEat, error) {
	scores, err := p.PredictSoftnessProba(queries)
	if err != nil {
		return nil, err
	}
	return decide(scores), nil
}

func scoreBatch[K avocado.Color | avocado.Softness](
	prior [avocado.NumLabels]float64,
	queries []K,
	size int,
	likelihood func(avocado.GoodToEat, K) float64,
) ([][]LabelScore, error) {
	if len(queries) == 0 {
		return nil, ErrEmptyQuery
	}

	marginal := make([]float64, size)
	for i, q := range queries {
		if int(q) >= size {
			return nil, fmt.Errorf("query %d: value %d out of range", i, int(q))
		}
		marginal[int(q)]++
	}
	n := float64(len(queries))
	for i := range marginal {
		marginal[i] /= n
	}

	results := make([][]LabelScore, len(queries))
	for i, q := range queries {
		evidence := marginal[int(q)]
		scores := make([]LabelScore, 0, avocado.NumLabels)
		for _, l := range avocado.Labels() {
			scores = append(scores, LabelScore{
				Label: l,
				Score: prior[l] * likelihood(l, q) / evidence,
			})
		}
		results[i] = scores
	}

	return results, nil
}

// decide takes the argmax of each score pair; ties go to the first label.
func decide(scores [][]LabelScore) []avocado.GoodToEat {
	labels := make([]avocado.GoodToEat, len(scores))
	for i, pair := range scores {
		best := pair[0]
		for _, s := range pair[1:] {
			if s.Score > best.Score {
				best = s
			}
		}
		labels[i] = best.Label
	}
	return labels
}
