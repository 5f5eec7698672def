// Package mapreading generates map colouring instructions over the province
// map, graded from naming a single city to reasoning about borders and coasts.
package mapreading

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
)

const title = "Harita Okuma"

type Settings struct {
	// Regions restricts the cities instructions are about. Empty means all.
	Regions     []Region           `json:"regions,omitempty"`
	Difficulty  problem.Difficulty `json:"difficulty"`
	MaxAttempts int                `json:"maxAttempts,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{Difficulty: problem.Easy}
}

func (s Settings) Validate() error {
	if !s.Difficulty.Valid() {
		return problem.InvalidSettings("unknown difficulty %q", s.Difficulty)
	}
	for _, r := range s.Regions {
		if _, ok := regionNames[r]; !ok {
			return problem.InvalidSettings("unknown region %q", r)
		}
	}
	return nil
}

// InstructionKind names one instruction template.
type InstructionKind string

const (
	ColorCity    InstructionKind = "color-city"
	Neighbor     InstructionKind = "neighbor"
	SharedLetter InstructionKind = "shared-letter"
	Inland       InstructionKind = "inland"
	Coastal      InstructionKind = "coastal"
)

// Instruction is one colouring task. Key identifies the task regardless of
// the colour chosen, and Answers lists every city that satisfies it.
type Instruction struct {
	Kind    InstructionKind
	Key     string
	Text    string
	Answers []string
}

var tiers = map[problem.Difficulty][]InstructionKind{
	problem.Easy:   {ColorCity},
	problem.Medium: {ColorCity, Neighbor, SharedLetter},
	problem.Hard:   {Neighbor, SharedLetter, Inland, Coastal},
}

// Colors are in the dative case, ready to follow "boyayınız".
var Colors = []string{"kırmızıya", "maviye", "yeşile", "sarıya", "turuncuya", "mora", "pembeye"}

type builder func(src *random.Source, pool []City) (Instruction, bool)

var builders = map[InstructionKind]builder{
	ColorCity:    colorCity,
	Neighbor:     neighbor,
	SharedLetter: sharedLetter,
	Inland:       inland,
	Coastal:      coastal,
}

func colorCity(src *random.Source, pool []City) (Instruction, bool) {
	c := random.Pick(src, pool)
	return Instruction{
		Kind:    ColorCity,
		Key:     fmt.Sprintf("%s:%d", ColorCity, c.ID),
		Text:    fmt.Sprintf("%s ilini %s boyayınız.", c.Name, random.Pick(src, Colors)),
		Answers: []string{c.Name},
	}, true
}

func neighbor(src *random.Source, pool []City) (Instruction, bool) {
	c := random.Pick(src, pool)
	if len(c.Neighbors) == 0 {
		return Instruction{}, false
	}
	names := make([]string, 0, len(c.Neighbors))
	for _, id := range c.Neighbors {
		names = append(names, Cities[id].Name)
	}
	slices.Sort(names)
	return Instruction{
		Kind:    Neighbor,
		Key:     fmt.Sprintf("%s:%d", Neighbor, c.ID),
		Text:    fmt.Sprintf("%s iline komşu olan illerden birini %s boyayınız.", c.Name, random.Pick(src, Colors)),
		Answers: names,
	}, true
}

func firstLetter(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}

func sharedLetter(src *random.Source, pool []City) (Instruction, bool) {
	groups := map[string][]string{}
	for _, c := range pool {
		l := firstLetter(c.Name)
		groups[l] = append(groups[l], c.Name)
	}
	var letters []string
	for l, names := range groups {
		if len(names) >= 2 {
			letters = append(letters, l)
		}
	}
	if len(letters) == 0 {
		return Instruction{}, false
	}
	slices.Sort(letters)
	l := random.Pick(src, letters)
	return Instruction{
		Kind:    SharedLetter,
		Key:     fmt.Sprintf("%s:%s", SharedLetter, l),
		Text:    fmt.Sprintf("Adı %s harfiyle başlayan iki ili %s boyayınız.", l, random.Pick(src, Colors)),
		Answers: groups[l],
	}, true
}

func inland(src *random.Source, pool []City) (Instruction, bool) {
	byRegion := map[Region][]string{}
	for _, c := range pool {
		if c.Coast == "" {
			byRegion[c.Region] = append(byRegion[c.Region], c.Name)
		}
	}
	var regions []Region
	for _, r := range Regions {
		if len(byRegion[r]) > 0 {
			regions = append(regions, r)
		}
	}
	if len(regions) == 0 {
		return Instruction{}, false
	}
	r := random.Pick(src, regions)
	return Instruction{
		Kind:    Inland,
		Key:     fmt.Sprintf("%s:%s", Inland, r),
		Text:    fmt.Sprintf("%s Bölgesi'nde denize kıyısı olmayan bir ili %s boyayınız.", r.Name(), random.Pick(src, Colors)),
		Answers: byRegion[r],
	}, true
}

func coastal(src *random.Source, pool []City) (Instruction, bool) {
	bySea := map[string][]string{}
	var seas []string
	for _, c := range pool {
		if c.Coast == "" {
			continue
		}
		if _, ok := bySea[c.Coast]; !ok {
			seas = append(seas, c.Coast)
		}
		bySea[c.Coast] = append(bySea[c.Coast], c.Name)
	}
	if len(seas) == 0 {
		return Instruction{}, false
	}
	sea := random.Pick(src, seas)
	return Instruction{
		Kind:    Coastal,
		Key:     fmt.Sprintf("%s:%s", Coastal, sea),
		Text:    fmt.Sprintf("%s kıyısında bulunan bir ili %s boyayınız.", sea, random.Pick(src, Colors)),
		Answers: bySea[sea],
	}, true
}

// Next draws one instruction for s from the tier's templates, skipping any
// whose Key is in seen. It gives up after the attempt cap.
func Next(src *random.Source, s Settings, seen map[string]bool) (Instruction, error) {
	if err := s.Validate(); err != nil {
		return Instruction{}, err
	}
	pool := InRegions(s.Regions)
	if len(pool) == 0 {
		return Instruction{}, problem.InvalidSettings("no cities in the selected regions")
	}
	kinds := tiers[s.Difficulty]
	var err error
	inst := problem.Retry(s.MaxAttempts, func(int) (Instruction, bool) {
		in, ok := builders[random.Pick(src, kinds)](src, pool)
		if !ok || seen[in.Key] {
			return Instruction{}, false
		}
		return in, true
	}, func(e error) Instruction {
		err = e
		return Instruction{}
	})
	return inst, err
}

// Render turns an instruction into a problem; the answer key lists every
// acceptable city.
func Render(in Instruction) problem.Problem {
	return problem.Problem{
		Question: markup.Text("Haritada " + lowerFirst(in.Text)),
		Answer:   strings.Join(in.Answers, ", "),
		Category: problem.CategoryMapReading,
		Display:  problem.DisplayInline,
	}
}

// lowerFirst lowercases "Adı" after the prefix; city names keep their case.
func lowerFirst(s string) string {
	if strings.HasPrefix(s, "Adı ") {
		return "adı " + s[len("Adı "):]
	}
	return s
}

func Generate(src *random.Source, s Settings) problem.Result {
	in, err := Next(src, s, nil)
	if err != nil {
		return problem.Fail(title, problem.CategoryMapReading, err)
	}
	return problem.OK(Render(in), title)
}

// GenerateBatch produces up to count distinct instructions. When the
// instruction space runs out first it returns what it found along with a
// KindExhausted error; if nothing was found the single problem is a
// placeholder.
func GenerateBatch(src *random.Source, s Settings, count int) ([]problem.Problem, string, error) {
	seen := map[string]bool{}
	out := make([]problem.Problem, 0, count)
	for len(out) < count {
		in, err := Next(src, s, seen)
		if err != nil {
			if len(out) == 0 {
				return []problem.Problem{problem.Fail(title, problem.CategoryMapReading, err).Problem}, title, err
			}
			return out, title, err
		}
		seen[in.Key] = true
		out = append(out, Render(in))
	}
	return out, title, nil
}
