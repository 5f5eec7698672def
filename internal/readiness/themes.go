package readiness

// Item is one picture a theme offers.
type Item struct {
	Emoji string
	Name  string
}

// Theme names an emoji pool.
type Theme string

const (
	Animals  Theme = "animals"
	Fruits   Theme = "fruits"
	Vehicles Theme = "vehicles"
	// AnyTheme picks a pool per problem.
	AnyTheme Theme = "random"
)

var themes = map[Theme][]Item{
	Animals: {
		{"🐶", "köpek"}, {"🐱", "kedi"}, {"🐰", "tavşan"},
		{"🐻", "ayı"}, {"🐸", "kurbağa"}, {"🐥", "civciv"},
	},
	Fruits: {
		{"🍎", "elma"}, {"🍌", "muz"}, {"🍓", "çilek"},
		{"🍇", "üzüm"}, {"🍊", "portakal"}, {"🍐", "armut"},
	},
	Vehicles: {
		{"🚗", "araba"}, {"🚌", "otobüs"}, {"🚲", "bisiklet"},
		{"✈️", "uçak"}, {"🚂", "tren"}, {"🚀", "roket"},
	},
}

// containers hold items in verbal problems, by theme.
var containers = map[Theme]string{
	Animals:  "Bahçede",
	Fruits:   "Sepette",
	Vehicles: "Otoparkta",
}
