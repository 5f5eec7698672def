// Package preview shows a generated worksheet batch as plain text and lets
// the user reshuffle it, pin a seed or change the problem count.
package preview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/markup"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/router"
	"github.com/abhisek/worksheetz/internal/screen"
	"github.com/abhisek/worksheetz/internal/ui/components"
	"github.com/abhisek/worksheetz/internal/ui/layout"
	"github.com/abhisek/worksheetz/internal/ui/theme"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

// Generator produces a batch for a request.
type Generator interface {
	Generate(ctx context.Context, req worksheet.Request) problem.Batch
}

type batchMsg struct {
	gen   int
	batch problem.Batch
}

// PreviewScreen renders one batch.
type PreviewScreen struct {
	gen     Generator
	req     worksheet.Request
	batch   problem.Batch
	loading bool
	// pending tags the in-flight request so stale results are dropped.
	pending int

	answers   bool
	offset    int
	seedInput *components.TextInput
}

var (
	_ screen.Screen          = (*PreviewScreen)(nil)
	_ screen.KeyHintProvider = (*PreviewScreen)(nil)
	_ screen.StatusProvider  = (*PreviewScreen)(nil)
	_ screen.InputCapturer   = (*PreviewScreen)(nil)
)

// New creates a preview for req. Generation starts on Init.
func New(gen Generator, req worksheet.Request) *PreviewScreen {
	return &PreviewScreen{gen: gen, req: req}
}

func (s *PreviewScreen) Init() tea.Cmd {
	return s.generate()
}

func (s *PreviewScreen) generate() tea.Cmd {
	s.loading = true
	s.pending++
	gen, req, tag := s.gen, s.req, s.pending
	return func() tea.Msg {
		return batchMsg{gen: tag, batch: gen.Generate(context.Background(), req)}
	}
}

func (s *PreviewScreen) Title() string {
	if s.batch.Title != "" {
		return s.batch.Title
	}
	if info, ok := worksheet.Lookup(s.req.Module); ok {
		return info.Title
	}
	return string(s.req.Module)
}

// Status shows the seed that replays the batch on screen.
func (s *PreviewScreen) Status() string {
	if s.batch.Seed == 0 {
		return ""
	}
	return fmt.Sprintf("seed %d  ", s.batch.Seed)
}

// CapturingInput reports whether the seed field is open.
func (s *PreviewScreen) CapturingInput() bool {
	return s.seedInput != nil
}

func (s *PreviewScreen) KeyHints() []layout.KeyHint {
	if s.seedInput != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	answers := "Answers"
	if s.answers {
		answers = "Hide answers"
	}
	return []layout.KeyHint{
		{Key: "a", Description: answers},
		{Key: "r", Description: "Reshuffle"},
		{Key: "s", Description: "Seed"},
		{Key: "+/-", Description: "Count"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "h", Description: "Home"},
		{Key: "Esc", Description: "Back"},
	}
}

// Batch returns the batch on screen.
func (s *PreviewScreen) Batch() problem.Batch {
	return s.batch
}

func (s *PreviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchMsg:
		if msg.gen != s.pending {
			return s, nil
		}
		s.batch = msg.batch
		s.loading = false
		s.offset = 0
		// Pin the seed so count changes keep the problems already shown.
		s.req.Seed = msg.batch.Seed
		return s, nil

	case tea.KeyMsg:
		if s.seedInput != nil {
			return s.updateSeedInput(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PreviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "a":
		s.answers = !s.answers
	case "r":
		s.req.Seed = 0
		return s, s.generate()
	case "s":
		ti := components.NewTextInput("Seed:", "örn. 42", true, 20)
		s.seedInput = &ti
		return s, ti.Init()
	case "+", "=":
		s.req.Count = s.currentCount() + 1
		s.req.AutoFit = false
		return s, s.generate()
	case "-":
		if n := s.currentCount(); n > 1 {
			s.req.Count = n - 1
			s.req.AutoFit = false
			return s, s.generate()
		}
	case "up", "k":
		s.offset = max(s.offset-1, 0)
	case "down", "j":
		s.offset++
	case "pgup":
		s.offset = max(s.offset-10, 0)
	case "pgdown", " ":
		s.offset += 10
	case "h":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *PreviewScreen) updateSeedInput(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.seedInput = nil
		return s, nil
	case "enter":
		seed, err := s.seedInput.Uint64Value()
		if err != nil || seed == 0 {
			s.seedInput.SetError("pozitif bir sayı girin")
			return s, nil
		}
		s.seedInput = nil
		s.req.Seed = seed
		return s, s.generate()
	}
	ti, cmd := s.seedInput.Update(msg)
	s.seedInput = &ti
	return s, cmd
}

// currentCount is the count the batch on screen was generated with.
func (s *PreviewScreen) currentCount() int {
	if n := len(s.batch.Problems); n > 0 {
		return n
	}
	return s.req.Count
}

func (s *PreviewScreen) View(width, height int) string {
	cw := min(width-4, 100)

	var footer []string
	if s.seedInput != nil {
		footer = append(footer, s.seedInput.View())
	}
	if msg := s.batch.ErrorMessage(); msg != "" && !s.loading {
		footer = append(footer, theme.Failure.Render(truncate("⚠ "+msg, cw)))
	}

	var body []string
	switch {
	case s.loading && len(s.batch.Problems) == 0:
		body = []string{theme.Hint.Render("Üretiliyor...")}
	default:
		body = s.lines(cw)
	}

	visible, offset := layout.Window(body, s.offset, max(height-len(footer)-1, 1))
	s.offset = offset

	content := strings.Join(append(visible, footer...), "\n")
	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2, 0, 2).
		Render(content)
}

// lines renders every problem as numbered plain-text rows.
func (s *PreviewScreen) lines(cw int) []string {
	var out []string
	for i, p := range s.batch.Problems {
		num := theme.Number.Render(fmt.Sprintf("%2d.", i+1))
		qstyle := theme.Body
		if p.Failed() {
			qstyle = theme.Failure
		}
		for j, line := range strings.Split(markup.PlainText(p.Question), "\n") {
			prefix := "    "
			if j == 0 {
				prefix = num + " "
			}
			out = append(out, prefix+qstyle.Render(truncate(line, cw-4)))
		}
		if s.answers {
			ans := markup.PlainText(p.Answer)
			out = append(out, "    "+theme.Answer.Render(truncate("→ "+strings.ReplaceAll(ans, "\n", " "), cw-4)))
		}
		out = append(out, "")
	}
	return out
}

func truncate(s string, w int) string {
	if w <= 1 || lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > w-1 {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
