package components

import (
	"strconv"
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/worksheetz/internal/ui/theme"
)

// TextInput is a labelled single-line field. With NumericOnly set, typed
// characters other than digits are ignored.
type TextInput struct {
	Model       textinput.Model
	Label       string
	NumericOnly bool
	errMsg      string
}

// NewTextInput returns a focused field. limit caps the number of
// characters when positive.
func NewTextInput(label, placeholder string, numericOnly bool, limit int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.CharLimit = max(limit, 0)
	m.Focus()
	return TextInput{Model: m, Label: label, NumericOnly: numericOnly}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && t.NumericOnly && !digits(key.Text) {
		return t, nil
	}
	t.errMsg = ""
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// digits is true for non-printing keys and for text made of digits only.
func digits(text string) bool {
	for _, r := range text {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

var (
	inputLabel = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	inputError = lipgloss.NewStyle().Foreground(theme.Error)
)

func (t TextInput) View() string {
	out := t.Model.View()
	if t.Label != "" {
		out = inputLabel.Render(t.Label) + " " + out
	}
	if t.errMsg != "" {
		out += "  " + inputError.Render(t.errMsg)
	}
	return out
}

func (t TextInput) Value() string { return t.Model.Value() }

func (t TextInput) Uint64Value() (uint64, error) {
	return strconv.ParseUint(t.Model.Value(), 10, 64)
}

// SetError shows msg beside the field until the next keystroke.
func (t *TextInput) SetError(msg string) { t.errMsg = msg }
