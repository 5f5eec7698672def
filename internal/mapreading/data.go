package mapreading

import (
	"slices"
	"sort"
)

// Region identifies one of the seven geographical regions.
type Region string

const (
	Marmara           Region = "marmara"
	Aegean            Region = "ege"
	Mediterranean     Region = "akdeniz"
	CentralAnatolia   Region = "ic-anadolu"
	BlackSea          Region = "karadeniz"
	EasternAnatolia   Region = "dogu-anadolu"
	SoutheastAnatolia Region = "guneydogu-anadolu"
)

// Regions lists every region in display order.
var Regions = []Region{Marmara, Aegean, Mediterranean, CentralAnatolia, BlackSea, EasternAnatolia, SoutheastAnatolia}

var regionNames = map[Region]string{
	Marmara:           "Marmara",
	Aegean:            "Ege",
	Mediterranean:     "Akdeniz",
	CentralAnatolia:   "İç Anadolu",
	BlackSea:          "Karadeniz",
	EasternAnatolia:   "Doğu Anadolu",
	SoutheastAnatolia: "Güneydoğu Anadolu",
}

// Name returns the display name of r.
func (r Region) Name() string { return regionNames[r] }

// City is a province. ID is its licence plate code. Coast names the sea the
// city is most associated with, or is empty for inland cities.
type City struct {
	ID        int
	Name      string
	Region    Region
	Neighbors []int
	Coast     string
}

var cityRows = []City{
	{ID: 22, Name: "Edirne", Region: Marmara, Coast: "Ege Denizi"},
	{ID: 39, Name: "Kırklareli", Region: Marmara, Coast: "Karadeniz"},
	{ID: 59, Name: "Tekirdağ", Region: Marmara, Coast: "Marmara Denizi"},
	{ID: 34, Name: "İstanbul", Region: Marmara, Coast: "Marmara Denizi"},
	{ID: 41, Name: "Kocaeli", Region: Marmara, Coast: "Marmara Denizi"},
	{ID: 77, Name: "Yalova", Region: Marmara, Coast: "Marmara Denizi"},
	{ID: 54, Name: "Sakarya", Region: Marmara, Coast: "Karadeniz"},
	{ID: 16, Name: "Bursa", Region: Marmara, Coast: "Marmara Denizi"},
	{ID: 17, Name: "Çanakkale", Region: Marmara, Coast: "Ege Denizi"},
	{ID: 10, Name: "Balıkesir", Region: Marmara, Coast: "Ege Denizi"},
	{ID: 11, Name: "Bilecik", Region: Marmara},

	{ID: 35, Name: "İzmir", Region: Aegean, Coast: "Ege Denizi"},
	{ID: 45, Name: "Manisa", Region: Aegean},
	{ID: 9, Name: "Aydın", Region: Aegean, Coast: "Ege Denizi"},
	{ID: 48, Name: "Muğla", Region: Aegean, Coast: "Ege Denizi"},
	{ID: 20, Name: "Denizli", Region: Aegean},
	{ID: 43, Name: "Kütahya", Region: Aegean},
	{ID: 3, Name: "Afyonkarahisar", Region: Aegean},
	{ID: 64, Name: "Uşak", Region: Aegean},

	{ID: 7, Name: "Antalya", Region: Mediterranean, Coast: "Akdeniz"},
	{ID: 33, Name: "Mersin", Region: Mediterranean, Coast: "Akdeniz"},
	{ID: 1, Name: "Adana", Region: Mediterranean, Coast: "Akdeniz"},
	{ID: 31, Name: "Hatay", Region: Mediterranean, Coast: "Akdeniz"},
	{ID: 32, Name: "Isparta", Region: Mediterranean},
	{ID: 15, Name: "Burdur", Region: Mediterranean},
	{ID: 80, Name: "Osmaniye", Region: Mediterranean},
	{ID: 46, Name: "Kahramanmaraş", Region: Mediterranean},

	{ID: 6, Name: "Ankara", Region: CentralAnatolia},
	{ID: 42, Name: "Konya", Region: CentralAnatolia},
	{ID: 26, Name: "Eskişehir", Region: CentralAnatolia},
	{ID: 38, Name: "Kayseri", Region: CentralAnatolia},
	{ID: 58, Name: "Sivas", Region: CentralAnatolia},
	{ID: 71, Name: "Kırıkkale", Region: CentralAnatolia},
	{ID: 68, Name: "Aksaray", Region: CentralAnatolia},
	{ID: 51, Name: "Niğde", Region: CentralAnatolia},
	{ID: 70, Name: "Karaman", Region: CentralAnatolia},
	{ID: 66, Name: "Yozgat", Region: CentralAnatolia},
	{ID: 40, Name: "Kırşehir", Region: CentralAnatolia},
	{ID: 50, Name: "Nevşehir", Region: CentralAnatolia},
	{ID: 18, Name: "Çankırı", Region: CentralAnatolia},

	{ID: 81, Name: "Düzce", Region: BlackSea, Coast: "Karadeniz"},
	{ID: 14, Name: "Bolu", Region: BlackSea},
	{ID: 67, Name: "Zonguldak", Region: BlackSea, Coast: "Karadeniz"},
	{ID: 74, Name: "Bartın", Region: BlackSea, Coast: "Karadeniz"},
	{ID: 78, Name: "Karabük", Region: BlackSea},
	{ID: 37, Name: "Kastamonu", Region: BlackSea, Coast: "Karadeniz"},
	{ID: 57, Name: "Sinop", Region: BlackSea, Coast: "Karadeniz"},
	{ID: 19, Name: "Çorum", Region: BlackSea},
	{ID: 55, Name: "Samsun", Region: BlackSea, Coast: "Karadeniz"},
	{ID: 5, Name: "Amasya", Region: BlackSea},
	{ID: 60, Name: "Tokat", Region: BlackSea},
	{ID: 52, Name: "Ordu", Region: BlackSea, Coast: "Karadeniz"},
	{ID: 28, Name: "Giresun", Region: BlackSea, Coast: "Karadeniz"},
	{ID: 61, Name: "Trabzon", Region: BlackSea, Coast: "Karadeniz"},
	{ID: 29, Name: "Gümüşhane", Region: BlackSea},
	{ID: 53, Name: "Rize", Region: BlackSea, Coast: "Karadeniz"},
	{ID: 8, Name: "Artvin", Region: BlackSea, Coast: "Karadeniz"},
	{ID: 69, Name: "Bayburt", Region: BlackSea},

	{ID: 25, Name: "Erzurum", Region: EasternAnatolia},
	{ID: 24, Name: "Erzincan", Region: EasternAnatolia},
	{ID: 36, Name: "Kars", Region: EasternAnatolia},
	{ID: 4, Name: "Ağrı", Region: EasternAnatolia},
	{ID: 65, Name: "Van", Region: EasternAnatolia},
	{ID: 13, Name: "Bitlis", Region: EasternAnatolia},
	{ID: 49, Name: "Muş", Region: EasternAnatolia},
	{ID: 44, Name: "Malatya", Region: EasternAnatolia},
	{ID: 23, Name: "Elazığ", Region: EasternAnatolia},
	{ID: 12, Name: "Bingöl", Region: EasternAnatolia},
	{ID: 62, Name: "Tunceli", Region: EasternAnatolia},
	{ID: 30, Name: "Hakkari", Region: EasternAnatolia},
	{ID: 75, Name: "Ardahan", Region: EasternAnatolia},
	{ID: 76, Name: "Iğdır", Region: EasternAnatolia},

	{ID: 27, Name: "Gaziantep", Region: SoutheastAnatolia},
	{ID: 79, Name: "Kilis", Region: SoutheastAnatolia},
	{ID: 2, Name: "Adıyaman", Region: SoutheastAnatolia},
	{ID: 63, Name: "Şanlıurfa", Region: SoutheastAnatolia},
	{ID: 21, Name: "Diyarbakır", Region: SoutheastAnatolia},
	{ID: 47, Name: "Mardin", Region: SoutheastAnatolia},
	{ID: 72, Name: "Batman", Region: SoutheastAnatolia},
	{ID: 56, Name: "Siirt", Region: SoutheastAnatolia},
	{ID: 73, Name: "Şırnak", Region: SoutheastAnatolia},
}

// borders lists land borders between cities in the table, by plate code.
var borders = [][2]int{
	{22, 39}, {22, 59}, {22, 17}, {39, 59}, {39, 34}, {59, 34}, {59, 17},
	{34, 41}, {41, 54}, {41, 16}, {41, 77}, {41, 11}, {77, 16},
	{54, 81}, {54, 14}, {54, 11}, {16, 10}, {16, 43}, {16, 11}, {17, 10},
	{10, 35}, {10, 45}, {10, 43}, {11, 26}, {11, 43}, {11, 14},

	{35, 45}, {35, 9}, {45, 43}, {45, 64}, {45, 20}, {45, 9}, {9, 48}, {9, 20},
	{48, 20}, {48, 15}, {48, 7}, {20, 64}, {20, 3}, {20, 15},
	{43, 64}, {43, 3}, {43, 26}, {64, 3}, {3, 26}, {3, 42}, {3, 32}, {3, 15},

	{7, 15}, {7, 32}, {7, 42}, {7, 70}, {7, 33}, {32, 15}, {32, 42},
	{33, 70}, {33, 42}, {33, 51}, {33, 1}, {1, 51}, {1, 38}, {1, 46}, {1, 80}, {1, 31},
	{31, 80}, {31, 27}, {80, 46}, {80, 27}, {46, 38}, {46, 58}, {46, 44}, {46, 2}, {46, 27},

	{26, 6}, {26, 42}, {6, 14}, {6, 18}, {6, 71}, {6, 40}, {6, 68}, {6, 42},
	{42, 68}, {42, 70}, {42, 51}, {68, 51}, {68, 50}, {68, 40}, {51, 50}, {51, 38},
	{71, 18}, {71, 19}, {71, 66}, {71, 40}, {40, 66}, {40, 50}, {50, 38}, {50, 66},
	{38, 66}, {38, 58}, {66, 19}, {66, 60}, {66, 58}, {18, 19}, {18, 37}, {18, 78}, {18, 14},
	{58, 60}, {58, 52}, {58, 28}, {58, 24}, {58, 44},

	{81, 14}, {81, 67}, {14, 67}, {14, 78}, {67, 74}, {67, 78}, {74, 78}, {74, 37},
	{78, 37}, {37, 57}, {37, 19}, {57, 19}, {57, 55}, {19, 55}, {19, 5},
	{55, 5}, {55, 60}, {55, 52}, {5, 60}, {60, 52}, {52, 28}, {28, 61}, {28, 29}, {28, 24},
	{61, 29}, {61, 53}, {53, 8}, {53, 25}, {8, 25}, {29, 24},

	{24, 25}, {25, 36}, {25, 4}, {25, 49}, {36, 4}, {4, 65}, {4, 49}, {4, 13},
	{65, 13}, {13, 49}, {13, 56}, {13, 72}, {49, 21}, {44, 23}, {44, 2}, {23, 21},
	{69, 61}, {69, 29}, {69, 53}, {69, 25}, {69, 24}, {75, 8}, {75, 36}, {75, 25},
	{76, 36}, {76, 4}, {12, 25}, {12, 49}, {12, 21}, {12, 23}, {12, 62}, {12, 24},
	{62, 24}, {62, 23}, {65, 30}, {65, 73}, {65, 56}, {30, 73},

	{27, 79}, {27, 63}, {27, 2}, {2, 63}, {2, 21}, {63, 21}, {63, 47},
	{21, 47}, {21, 72}, {47, 72}, {47, 56}, {72, 56},
	{73, 56}, {73, 47},
}

// Cities is the read-only city table keyed by plate code.
var Cities = buildCities()

func buildCities() map[int]City {
	out := make(map[int]City, len(cityRows))
	for _, c := range cityRows {
		out[c.ID] = c
	}
	for _, b := range borders {
		a, z := out[b[0]], out[b[1]]
		a.Neighbors = append(a.Neighbors, z.ID)
		z.Neighbors = append(z.Neighbors, a.ID)
		out[a.ID], out[z.ID] = a, z
	}
	for id, c := range out {
		slices.Sort(c.Neighbors)
		out[id] = c
	}
	return out
}

// InRegions returns the cities of the given regions sorted by name. An
// empty selection means every region.
func InRegions(regions []Region) []City {
	var out []City
	for _, c := range Cities {
		if len(regions) == 0 || slices.Contains(regions, c.Region) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
