package markup

import (
	"strings"
	"testing"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"text", "3 + 4 = ?", "3 + 4 = ?"},
		{"escaped", Text("a < b"), "a < b"},
		{"fraction", Fraction("3", "4") + " + " + Fraction("1", "4"), "3/4 + 1/4"},
		{"mixed", MixedFraction("2", "1", "3"), "2 1/3"},
		{"blank", "5 + " + Blank() + " = 8", "5 + ____ = 8"},
		{"lines", Lines("bir", "iki"), "bir\niki"},
		{"svg", `<svg width="10"><text>12</text></svg> Saat kaç?`, "[şekil] Saat kaç?"},
		{"long division", LongDivision("84", "4"), "84 | 4"},
		{"boxes", Row(FilledBox("5"), Box(), FilledBox("15")), "[5] [ ] [15]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.in); got != tt.want {
				t.Errorf("PlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVerticalPlainText(t *testing.T) {
	got := PlainText(Vertical("+", "345", "27"))
	want := "345\n+ 27"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFractionEscapes(t *testing.T) {
	if strings.Contains(Fraction("<x>", "2"), "<x>") {
		t.Error("fraction content should be escaped")
	}
}
