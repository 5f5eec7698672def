// Package problem defines the worksheet item shape shared by every generator,
// the error taxonomy generators report, and the bounded retry loop.
package problem

// Category tags which generator family produced a problem.
type Category string

const (
	CategoryArithmetic  Category = "arithmetic"
	CategoryFractions   Category = "fractions"
	CategoryDecimals    Category = "decimals"
	CategoryPlaceValue  Category = "place-value"
	CategoryMeasurement Category = "measurement"
	CategoryGeometry    Category = "geometry"
	CategoryTime        Category = "time"
	CategoryRhythm      Category = "rhythmic-counting"
	CategoryReadiness   Category = "readiness"
	CategoryAttention   Category = "attention"
	CategoryMapReading  Category = "map-reading"
	CategoryAI          Category = "ai"
	CategoryError       Category = "error"
)

// Display selects how the renderer should lay out the question markup.
type Display string

const (
	DisplayInline       Display = "inline"
	DisplayVertical     Display = "vertical"
	DisplayLongDivision Display = "long-division"
)

// FailureAnswer is the answer of every placeholder problem produced when
// generation could not complete.
const FailureAnswer = "Hata"

// Problem is one generated exercise. Question and Answer are HTML fragments
// meant for direct injection into the worksheet page.
type Problem struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category Category `json:"category"`
	Display  Display  `json:"display,omitempty"`
}

// Failed reports whether p is a placeholder for a failed generation.
func (p Problem) Failed() bool {
	return p.Answer == FailureAnswer
}

// Result is the outcome of one generator invocation. When Err is set, Problem
// holds a renderable placeholder explaining the failure.
type Result struct {
	Problem Problem
	Title   string
	Err     error
}

// OK builds a successful Result.
func OK(p Problem, title string) Result {
	return Result{Problem: p, Title: title}
}

// Fail builds a placeholder Result for err. The placeholder question carries
// the error message so a printed sheet still explains what went wrong.
func Fail(title string, category Category, err error) Result {
	msg := "Soru üretilemedi."
	if err != nil {
		msg = "Soru üretilemedi: " + err.Error()
	}
	return Result{
		Problem: Problem{
			Question: msg,
			Answer:   FailureAnswer,
			Category: category,
			Display:  DisplayInline,
		},
		Title: title,
		Err:   err,
	}
}

// Batch is the aggregated outcome of generating several problems for one
// module. Seed replays the batch exactly when fed back into a request.
type Batch struct {
	ID       string    `json:"id"`
	Module   string    `json:"module"`
	Seed     uint64    `json:"seed"`
	Title    string    `json:"title"`
	Problems []Problem `json:"problems"`
	Err      error     `json:"-"`
}

// ErrorMessage returns Err's text, or "" when the batch succeeded.
func (b Batch) ErrorMessage() string {
	if b.Err == nil {
		return ""
	}
	return b.Err.Error()
}

// Difficulty is the three-tier difficulty shared by most generators.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Valid reports whether d is one of the declared tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}
