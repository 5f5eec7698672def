// Package worksheet routes a module request to its generator, batches the
// results and turns every failure into a renderable placeholder.
package worksheet

import "github.com/abhisek/worksheetz/internal/problem"

// ModuleID is the stable key a caller uses to select a generator.
type ModuleID string

const (
	ModuleArithmetic  ModuleID = "arithmetic"
	ModuleFractions   ModuleID = "fractions"
	ModuleDecimals    ModuleID = "decimals"
	ModulePlaceValue  ModuleID = "place-value"
	ModuleMeasurement ModuleID = "measurement"
	ModuleGeometry    ModuleID = "geometry"
	ModuleTime        ModuleID = "time"
	ModuleRhythm      ModuleID = "rhythmic-counting"
	ModuleReadiness   ModuleID = "readiness"
	ModuleAttention   ModuleID = "attention"
	ModuleMapReading  ModuleID = "map-reading"
	ModuleAI          ModuleID = "ai"
)

// ModuleInfo describes a registered module.
type ModuleInfo struct {
	ID       ModuleID         `json:"id"`
	Title    string           `json:"title"`
	Category problem.Category `json:"category"`
	// Batched modules produce the whole batch in one call so they can avoid
	// repeating themselves.
	Batched bool `json:"batched"`
	// AI modules delegate to the text generator.
	AI bool `json:"ai"`
}

var modules = []ModuleInfo{
	{ID: ModuleArithmetic, Title: "Dört İşlem", Category: problem.CategoryArithmetic},
	{ID: ModuleFractions, Title: "Kesirler", Category: problem.CategoryFractions},
	{ID: ModuleDecimals, Title: "Ondalık Sayılar", Category: problem.CategoryDecimals},
	{ID: ModulePlaceValue, Title: "Basamak Değeri", Category: problem.CategoryPlaceValue},
	{ID: ModuleMeasurement, Title: "Ölçme", Category: problem.CategoryMeasurement},
	{ID: ModuleGeometry, Title: "Geometri", Category: problem.CategoryGeometry},
	{ID: ModuleTime, Title: "Zaman Ölçme", Category: problem.CategoryTime},
	{ID: ModuleRhythm, Title: "Ritmik Sayma", Category: problem.CategoryRhythm},
	{ID: ModuleReadiness, Title: "Matematiğe Hazırlık", Category: problem.CategoryReadiness},
	{ID: ModuleAttention, Title: "Dikkat Soruları", Category: problem.CategoryAttention},
	{ID: ModuleMapReading, Title: "Harita Okuma", Category: problem.CategoryMapReading, Batched: true},
	{ID: ModuleAI, Title: "Yapay Zekâ Destekli Sorular", Category: problem.CategoryAI, Batched: true, AI: true},
}

// Modules lists every registered module in menu order.
func Modules() []ModuleInfo {
	out := make([]ModuleInfo, len(modules))
	copy(out, modules)
	return out
}

// Lookup returns the registry entry for id.
func Lookup(id ModuleID) (ModuleInfo, bool) {
	for _, m := range modules {
		if m.ID == id {
			return m, true
		}
	}
	return ModuleInfo{}, false
}
