package geometry

import (
	"fmt"
	"strconv"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/random"
	"github.com/abhisek/worksheetz/internal/svg"
)

type Type string

const (
	Perimeter        Type = "perimeter"
	Area             Type = "area"
	ShapeRecognition Type = "shape-recognition"
	SolidRecognition Type = "solid-recognition"
	SolidElements    Type = "solid-elements"
)

var titles = map[Type]string{
	Perimeter:        "Çevre Uzunluğu",
	Area:             "Alan Hesaplama",
	ShapeRecognition: "Geometrik Şekiller",
	SolidRecognition: "Geometrik Cisimler",
	SolidElements:    "Cisimlerin Elemanları",
}

type Settings struct {
	Type       Type               `json:"type"`
	Shapes     []svg.ShapeKind    `json:"shapes"`
	Difficulty problem.Difficulty `json:"difficulty"`
}

func DefaultSettings() Settings {
	return Settings{Type: Perimeter, Shapes: []svg.ShapeKind{svg.Square, svg.Rectangle, svg.Triangle}, Difficulty: problem.Easy}
}

func (s Settings) Validate() error {
	if _, ok := titles[s.Type]; !ok {
		return problem.InvalidSettings("unknown geometry type %q", s.Type)
	}
	if !s.Difficulty.Valid() {
		return problem.InvalidSettings("unknown difficulty %q", s.Difficulty)
	}
	if s.Type == Perimeter || s.Type == Area {
		if len(s.candidates()) == 0 {
			return problem.InvalidSettings("no shape selected for a %s problem", s.Type)
		}
	}
	return nil
}

// candidates filters the selected shapes to those the problem type supports.
func (s Settings) candidates() []svg.ShapeKind {
	var out []svg.ShapeKind
	for _, k := range s.Shapes {
		if _, ok := shapes[k]; !ok {
			continue
		}
		if s.Type == Area && !HasArea(k) {
			continue
		}
		out = append(out, k)
	}
	return out
}

func Generate(src *random.Source, s Settings) problem.Result {
	title := titles[s.Type]
	if title == "" {
		title = "Geometri"
	}
	if err := s.Validate(); err != nil {
		return problem.Fail(title, problem.CategoryGeometry, err)
	}

	var p problem.Problem
	switch s.Type {
	case Perimeter, Area:
		kind := random.Pick(src, s.candidates())
		lo, hi := sizeRange(s.Difficulty == problem.Hard, s.Difficulty == problem.Medium)
		var err error
		if p, err = RenderMeasure(drawFigure(src, kind, lo, hi, s.Type == Area), s.Type == Area); err != nil {
			return problem.Fail(title, problem.CategoryGeometry, err)
		}
	case ShapeRecognition:
		kind := random.Pick(src, svg.Kinds)
		info := shapes[kind]
		p = problem.Problem{Question: markup.Text(info.definition + " hangisidir?"), Answer: info.name}
	case SolidRecognition:
		solid := random.Pick(src, Solids)
		p = problem.Problem{Question: markup.Text(solid.Definition + " hangisidir?"), Answer: solid.Name}
	case SolidElements:
		p = solidElements(src)
	}
	p.Category = problem.CategoryGeometry
	p.Display = problem.DisplayInline
	return problem.OK(p, title)
}

// RenderMeasure draws the figure and asks for its perimeter or area.
func RenderMeasure(f Figure, area bool) (problem.Problem, error) {
	fig, err := svg.Shape(f.Kind, f.labels(area))
	if err != nil {
		return problem.Problem{}, err
	}
	name := shapes[f.Kind].name
	var q, a string
	if area {
		v, ok := f.Area()
		if !ok {
			return problem.Problem{}, problem.InvalidSettings("%s has no area problem", f.Kind)
		}
		q = fmt.Sprintf("%s şeklinin alanı kaç santimetrekaredir?", name)
		a = strconv.Itoa(v) + " cm²"
	} else {
		q = fmt.Sprintf("%s şeklinin çevre uzunluğu kaç santimetredir?", name)
		a = cm(f.Perimeter())
	}
	if f.Kind == svg.Circle {
		q += " (π yerine 3 alınız.)"
	}
	return problem.Problem{Question: fig + "<br>" + markup.Text(q), Answer: a}, nil
}

var elementNames = []string{"köşe", "ayrıt", "yüz"}

func solidElements(src *random.Source) problem.Problem {
	var polyhedra []Solid
	for _, s := range Solids {
		if s.Polyhedron {
			polyhedra = append(polyhedra, s)
		}
	}
	solid := random.Pick(src, polyhedra)
	i := src.Intn(len(elementNames))
	counts := []int{solid.Vertices, solid.Edges, solid.Faces}
	q := fmt.Sprintf("%s cisminin %s sayısı kaçtır?", solid.Name, elementNames[i])
	return problem.Problem{Question: markup.Text(q), Answer: strconv.Itoa(counts[i])}
}
