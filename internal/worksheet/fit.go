package worksheet

import (
	"strings"

	"github.com/abhisek/worksheetz/internal/problem"
)

// Page describes the printable area in millimetres.
type Page struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	Columns int `json:"columns"`
}

// A4 is a portrait A4 page in two columns.
func A4() Page {
	return Page{Width: 210, Height: 297, Columns: 2}
}

// PageFitter decides how many problems shaped like sample fit on page.
type PageFitter interface {
	Fit(sample problem.Problem, page Page) int
}

// HeightFitter estimates capacity from the height a problem's display mode
// needs. It stands in when no layout engine measures the real page.
type HeightFitter struct {
	// Margin is applied to the top and bottom.
	Margin int
	// Header is the space reserved for the title and name line.
	Header int
}

// DefaultFitter uses 15 mm margins and a 25 mm header.
var DefaultFitter = HeightFitter{Margin: 15, Header: 25}

func (f HeightFitter) Fit(sample problem.Problem, page Page) int {
	if page.Height <= 0 {
		page = A4()
	}
	cols := max(page.Columns, 1)
	usable := page.Height - 2*f.Margin - f.Header

	var row int
	switch {
	case strings.Contains(sample.Question, "<svg"):
		row = 70
	case sample.Display == problem.DisplayLongDivision:
		row = 45
	case sample.Display == problem.DisplayVertical:
		row = 35
		// narrow columns pack two per column
		cols *= 2
	default:
		lines := strings.Count(sample.Question, "<br>") + 1
		row = 12 + 7*(lines-1)
	}
	return max(usable/row*cols, 1)
}
