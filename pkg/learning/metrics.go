package learning

import "github.com/Sr31bu/avocado-predictor/pkg/avocado"

// Accuracy returns the fraction of positions where predictions matches
// actual. Two empty slices have accuracy 0.
func Accuracy(predictions, actual []avocado.GoodToEat) (float64, error) {
	if len(predictions) != len(actual) {
		return 0, &LengthMismatchError{Predictions: len(predictions), Actual: len(actual)}
	}
	if len(predictions) == 0 {
		return 0, nil
	}

	correct := 0
	for i := range predictions {
		if predictions[i] == actual[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(predictions)), nil
}
