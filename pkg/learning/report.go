package learning

import (
	"fmt"
	"io"

	"github.com/Sr31bu/avocado-predictor/pkg/avocado"
)

// PrintTables writes the fitted tables in a human readable form.
func (p *Predictor) PrintTables(w io.Writer) {
	t := p.Tables()

	fmt.Fprintf(w, "🥑 Avocado Predictor\n")
	fmt.Fprintf(w, "════════════════════════════════════════\n")
	fmt.Fprintf(w, "Training Data:\n")
	fmt.Fprintf(w, "  Examples: %d\n", t.Examples)
	for _, l := range avocado.Labels() {
		fmt.Fprintf(w, "  %-3s: %d\n", l, t.LabelCounts[l])
	}
	if !t.LastTrained.IsZero() {
		fmt.Fprintf(w, "  Last trained: %s\n", t.LastTrained.Format("2006-01-02 15:04:05"))
	}

	fmt.Fprintf(w, "\nGood to eat prior:\n")
	for _, l := range avocado.Labels() {
		fmt.Fprintf(w, "  %-3s %.4f\n", l, t.Prior[l])
	}

	fmt.Fprintf(w, "\nColor given good to eat:\n")
	for _, l := range avocado.Labels() {
		fmt.Fprintf(w, "  %-3s", l)
		for _, c := range avocado.Colors() {
			fmt.Fprintf(w, "  %s=%.4f", c, t.ColorGivenLabel[l][c])
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "\nSoftness given good to eat:\n")
	for _, l := range avocado.Labels() {
		fmt.Fprintf(w, "  %-3s", l)
		for _, s := range avocado.Softnesses() {
			fmt.Fprintf(w, "  %s=%.4f", s, t.SoftnessGivenLabel[l][s])
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "\n")
}

// PrintScores writes one line per query with its (YES, NO) scores.
func PrintScores[K fmt.Stringer](w io.Writer, queries []K, scores [][]LabelScore) {
	for i, pair := range scores {
		fmt.Fprintf(w, "  %3d. %-7s", i+1, queries[i])
		for _, s := range pair {
			fmt.Fprintf(w, "  %s=%.4f", s.Label, s.Score)
		}
		fmt.Fprintf(w, "\n")
	}
}
