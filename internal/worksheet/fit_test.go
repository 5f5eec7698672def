package worksheet

import (
	"testing"

	"github.com/abhisek/worksheetz/internal/problem"
)

func TestHeightFitter(t *testing.T) {
	tests := []struct {
		name   string
		sample problem.Problem
		page   Page
		want   int
	}{
		{"inline", problem.Problem{Question: "3 + 4 = ?", Display: problem.DisplayInline}, A4(), 40},
		{"multi-line", problem.Problem{Question: "a<br>b<br>c", Display: problem.DisplayInline}, A4(), 18},
		{"vertical", problem.Problem{Question: "<table>", Display: problem.DisplayVertical}, A4(), 24},
		{"long division", problem.Problem{Display: problem.DisplayLongDivision}, A4(), 10},
		{"figure", problem.Problem{Question: `<svg width="10"></svg>`}, A4(), 6},
		{"single column", problem.Problem{Display: problem.DisplayInline}, Page{Width: 210, Height: 297, Columns: 1}, 20},
		{"zero page defaults to A4", problem.Problem{Display: problem.DisplayInline}, Page{}, 40},
		{"tiny page", problem.Problem{Display: problem.DisplayInline}, Page{Height: 60, Columns: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultFitter.Fit(tt.sample, tt.page); got != tt.want {
				t.Errorf("Fit() = %d, want %d", got, tt.want)
			}
		})
	}
}
