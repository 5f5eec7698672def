// Package attention generates "which one am I?" puzzles: candidates split
// over two boxes and a few clues that single out exactly one of them.
package attention

import (
	"unicode/utf8"

	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

// Mode selects numbers or words as candidates.
type Mode string

const (
	Numerical Mode = "numerical"
	Verbal    Mode = "verbal"
)

type Settings struct {
	Mode        Mode               `json:"mode"`
	Difficulty  problem.Difficulty `json:"difficulty"`
	MaxAttempts int                `json:"maxAttempts,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{Mode: Numerical, Difficulty: problem.Easy}
}

func (s Settings) Validate() error {
	if s.Mode != Numerical && s.Mode != Verbal {
		return problem.InvalidSettings("unknown attention mode %q", s.Mode)
	}
	if !s.Difficulty.Valid() {
		return problem.InvalidSettings("unknown difficulty %q", s.Difficulty)
	}
	return nil
}

// Candidate is one entry in a box.
type Candidate struct {
	Value     int
	Word      string
	Category  string
	Container int
	Index     int
}

// Length is the letter count of a word candidate.
func (c Candidate) Length() int { return utf8.RuneCountInString(c.Word) }

// Clue is a statement about the hidden candidate. Test reports whether c,
// sitting in container, satisfies the statement.
type Clue struct {
	Text string
	Test func(c Candidate, container []Candidate, all [][]Candidate) bool
}

// Puzzle is a generated instance. A valid puzzle has exactly one candidate
// across all containers that satisfies every clue, and it is Answer.
type Puzzle struct {
	Mode       Mode
	Containers [][]Candidate
	Clues      []Clue
	Answer     Candidate
}

// Matches returns every candidate that satisfies all clues.
func (p Puzzle) Matches() []Candidate {
	var out []Candidate
	for _, box := range p.Containers {
		for _, c := range box {
			ok := true
			for _, cl := range p.Clues {
				if !cl.Test(c, box, p.Containers) {
					ok = false
					break
				}
			}
			if ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// Valid reports whether the clues single out Answer.
func (p Puzzle) Valid() bool {
	m := p.Matches()
	return len(m) == 1 && m[0] == p.Answer
}

// ClueCount is the number of clues shown per difficulty.
func ClueCount(src *random.Source, d problem.Difficulty) int {
	switch d {
	case problem.Easy:
		return 2
	case problem.Medium:
		return src.Int(2, 3)
	}
	return 3
}

// Draw runs the generate-validate-retry loop: draw boxes and an answer, build
// the pool of clues true for the answer, pick a subset and keep it only if it
// identifies the answer uniquely.
func Draw(src *random.Source, s Settings) (Puzzle, error) {
	if err := s.Validate(); err != nil {
		return Puzzle{}, err
	}
	var err error
	p := problem.Retry(s.MaxAttempts, func(int) (Puzzle, bool) {
		return attempt(src, s)
	}, func(e error) Puzzle {
		err = e
		return Puzzle{}
	})
	return p, err
}

func attempt(src *random.Source, s Settings) (Puzzle, bool) {
	var boxes [][]Candidate
	if s.Mode == Verbal {
		boxes = drawWords(src)
	} else {
		boxes = drawNumbers(src, s.Difficulty)
	}
	box := random.Pick(src, boxes)
	answer := random.Pick(src, box)

	var pool []Clue
	if s.Mode == Verbal {
		pool = verbalClues(answer, boxes)
	} else {
		pool = numericClues(src, answer, boxes, s.Difficulty)
	}

	k := ClueCount(src, s.Difficulty)
	if len(pool) < k {
		return Puzzle{}, false
	}
	p := Puzzle{Mode: s.Mode, Containers: boxes, Clues: random.Sample(src, pool, k), Answer: answer}
	return p, p.Valid()
}

// boxSizes draws the size of each box.
func boxSizes(src *random.Source) (int, int) {
	return src.Int(4, 5), src.Int(4, 5)
}

func split(items []Candidate, n1 int) [][]Candidate {
	boxes := [][]Candidate{items[:n1], items[n1:]}
	for ci, box := range boxes {
		for i := range box {
			box[i].Container = ci
			box[i].Index = i
		}
	}
	return boxes
}

func numberRange(d problem.Difficulty) (int, int) {
	switch d {
	case problem.Easy:
		return 10, 99
	case problem.Medium:
		return 5, 300
	}
	return 5, 999
}

func drawNumbers(src *random.Source, d problem.Difficulty) [][]Candidate {
	lo, hi := numberRange(d)
	n1, n2 := boxSizes(src)
	total := n1 + n2
	seen := make(map[int]bool, total)
	items := make([]Candidate, 0, total)
	for len(items) < total {
		v := src.Int(lo, hi)
		if seen[v] {
			continue
		}
		seen[v] = true
		items = append(items, Candidate{Value: v})
	}
	return split(items, n1)
}

func drawWords(src *random.Source) [][]Candidate {
	n1, n2 := boxSizes(src)
	var all []Candidate
	for _, cat := range categories {
		for _, w := range cat.words {
			all = append(all, Candidate{Word: w, Category: cat.name})
		}
	}
	return split(random.Sample(src, all, n1+n2), n1)
}
