package geometry

import "github.com/abhisek/worksheetz/internal/svg"

type shapeInfo struct {
	name       string
	definition string
}

var shapes = map[svg.ShapeKind]shapeInfo{
	svg.Square:        {"Kare", "Dört kenarının uzunluğu eşit ve dört açısı dik olan dörtgen"},
	svg.Rectangle:     {"Dikdörtgen", "Karşılıklı kenarları eşit ve dört açısı dik olan dörtgen"},
	svg.Triangle:      {"Üçgen", "Üç kenarı ve üç köşesi olan kapalı şekil"},
	svg.Parallelogram: {"Paralelkenar", "Karşılıklı kenarları paralel ve eşit uzunlukta olan dörtgen"},
	svg.Trapezoid:     {"Yamuk", "Yalnızca iki kenarı birbirine paralel olan dörtgen"},
	svg.Pentagon:      {"Düzgün beşgen", "Beş kenarının uzunluğu eşit olan çokgen"},
	svg.Hexagon:       {"Düzgün altıgen", "Altı kenarının uzunluğu eşit olan çokgen"},
	svg.Rhombus:       {"Eşkenar dörtgen", "Dört kenarı eşit ancak açıları dik olmak zorunda olmayan dörtgen"},
	svg.Circle:        {"Daire", "Sınırı bir merkeze eşit uzaklıktaki noktalardan oluşan düzlemsel bölge"},
}

// Solid describes a three-dimensional shape.
type Solid struct {
	Name       string
	Definition string
	// Polyhedron is false for curved solids, which have no vertex, edge or
	// face counts in the sense taught here.
	Polyhedron bool
	Vertices   int
	Edges      int
	Faces      int
}

// Solids is the static solid table.
var Solids = []Solid{
	{"Küp", "Altı yüzü de eş karelerden oluşan cisim", true, 8, 12, 6},
	{"Dikdörtgenler prizması", "Yüzleri dikdörtgenlerden oluşan prizma", true, 8, 12, 6},
	{"Üçgen prizma", "İki tabanı üçgen, yan yüzleri dikdörtgen olan prizma", true, 6, 9, 5},
	{"Beşgen prizma", "İki tabanı beşgen olan prizma", true, 10, 15, 7},
	{"Altıgen prizma", "İki tabanı altıgen olan prizma", true, 12, 18, 8},
	{"Kare piramit", "Tabanı kare, yan yüzleri üçgen olan piramit", true, 5, 8, 5},
	{"Üçgen piramit", "Tabanı ve yan yüzleri üçgen olan piramit", true, 4, 6, 4},
	{"Silindir", "İki tabanı eş daire olan, yan yüzü eğri cisim", false, 0, 0, 0},
	{"Koni", "Tabanı daire olan ve tepe noktasında sivrilen cisim", false, 0, 0, 0},
	{"Küre", "Yüzeyindeki her noktası merkeze eşit uzaklıkta olan cisim", false, 0, 0, 0},
}
