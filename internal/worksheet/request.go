package worksheet

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/worksheetz/internal/arithmetic"
	"github.com/abhisek/worksheetz/internal/attention"
	"github.com/abhisek/worksheetz/internal/clocktime"
	"github.com/abhisek/worksheetz/internal/decimals"
	"github.com/abhisek/worksheetz/internal/fractions"
	"github.com/abhisek/worksheetz/internal/geometry"
	"github.com/abhisek/worksheetz/internal/mapreading"
	"github.com/abhisek/worksheetz/internal/measurement"
	"github.com/abhisek/worksheetz/internal/placevalue"
	"github.com/abhisek/worksheetz/internal/problem"
	"github.com/abhisek/worksheetz/internal/problemgen"
	"github.com/abhisek/worksheetz/internal/random"
	"github.com/abhisek/worksheetz/internal/readiness"
	"github.com/abhisek/worksheetz/internal/rhythm"
)

// Request asks for one worksheet section. Only the settings field matching
// Module is read; a nil field means the module's defaults.
type Request struct {
	Module ModuleID `json:"module"`
	// Count is the number of problems. Zero means the configured default.
	Count int `json:"count,omitempty"`
	// AutoFit sizes the batch to fill Page instead of using Count.
	AutoFit bool `json:"autoFit,omitempty"`
	Page    Page `json:"page,omitempty"`
	// Seed replays an earlier batch. Zero draws a fresh seed.
	Seed uint64 `json:"seed,omitempty"`

	Arithmetic  *arithmetic.Settings  `json:"arithmetic,omitempty"`
	Fractions   *fractions.Settings   `json:"fractions,omitempty"`
	Decimals    *decimals.Settings    `json:"decimals,omitempty"`
	PlaceValue  *placevalue.Settings  `json:"placeValue,omitempty"`
	Measurement *measurement.Settings `json:"measurement,omitempty"`
	Geometry    *geometry.Settings    `json:"geometry,omitempty"`
	Time        *clocktime.Settings   `json:"time,omitempty"`
	Rhythm      *rhythm.Settings      `json:"rhythm,omitempty"`
	Readiness   *readiness.Settings   `json:"readiness,omitempty"`
	Attention   *attention.Settings   `json:"attention,omitempty"`
	MapReading  *mapreading.Settings  `json:"mapReading,omitempty"`
	AI          *problemgen.Settings  `json:"ai,omitempty"`
}

func orDefault[T any](p *T, def func() T) T {
	if p != nil {
		return *p
	}
	return def()
}

// Settings returns the settings value the request resolves to, or nil for an
// unknown module.
func (r Request) Settings() any {
	switch r.Module {
	case ModuleArithmetic:
		return orDefault(r.Arithmetic, arithmetic.DefaultSettings)
	case ModuleFractions:
		return orDefault(r.Fractions, fractions.DefaultSettings)
	case ModuleDecimals:
		return orDefault(r.Decimals, decimals.DefaultSettings)
	case ModulePlaceValue:
		return orDefault(r.PlaceValue, placevalue.DefaultSettings)
	case ModuleMeasurement:
		return orDefault(r.Measurement, measurement.DefaultSettings)
	case ModuleGeometry:
		return orDefault(r.Geometry, geometry.DefaultSettings)
	case ModuleTime:
		return orDefault(r.Time, clocktime.DefaultSettings)
	case ModuleRhythm:
		return orDefault(r.Rhythm, rhythm.DefaultSettings)
	case ModuleReadiness:
		return orDefault(r.Readiness, readiness.DefaultSettings)
	case ModuleAttention:
		return orDefault(r.Attention, attention.DefaultSettings)
	case ModuleMapReading:
		return orDefault(r.MapReading, mapreading.DefaultSettings)
	case ModuleAI:
		return orDefault(r.AI, problemgen.DefaultSettings)
	}
	return nil
}

// generateFunc produces one problem from a source.
type generateFunc func(src *random.Source) problem.Result

// generator binds the request's settings to its per-problem generator.
// maxAttempts fills in retry caps the settings leave at zero. Batched modules
// have no per-problem generator.
func (r Request) generator(maxAttempts int) (generateFunc, bool) {
	switch s := r.Settings().(type) {
	case arithmetic.Settings:
		if s.MaxAttempts == 0 {
			s.MaxAttempts = maxAttempts
		}
		return func(src *random.Source) problem.Result { return arithmetic.Generate(src, s) }, true
	case fractions.Settings:
		if s.MaxAttempts == 0 {
			s.MaxAttempts = maxAttempts
		}
		return func(src *random.Source) problem.Result { return fractions.Generate(src, s) }, true
	case decimals.Settings:
		if s.MaxAttempts == 0 {
			s.MaxAttempts = maxAttempts
		}
		return func(src *random.Source) problem.Result { return decimals.Generate(src, s) }, true
	case placevalue.Settings:
		return func(src *random.Source) problem.Result { return placevalue.Generate(src, s) }, true
	case measurement.Settings:
		return func(src *random.Source) problem.Result { return measurement.Generate(src, s) }, true
	case geometry.Settings:
		return func(src *random.Source) problem.Result { return geometry.Generate(src, s) }, true
	case clocktime.Settings:
		return func(src *random.Source) problem.Result { return clocktime.Generate(src, s) }, true
	case rhythm.Settings:
		return func(src *random.Source) problem.Result { return rhythm.Generate(src, s) }, true
	case readiness.Settings:
		return func(src *random.Source) problem.Result { return readiness.Generate(src, s) }, true
	case attention.Settings:
		if s.MaxAttempts == 0 {
			s.MaxAttempts = maxAttempts
		}
		return func(src *random.Source) problem.Result { return attention.Generate(src, s) }, true
	}
	return nil, false
}

// DecodeRequest builds a request for module whose settings are decoded from
// raw. An empty raw leaves the module on its defaults.
func DecodeRequest(module ModuleID, raw []byte) (Request, error) {
	req := Request{Module: module}
	if _, ok := Lookup(module); !ok {
		return req, fmt.Errorf("unknown module %q", module)
	}
	if len(raw) == 0 {
		return req, nil
	}

	var target any
	switch module {
	case ModuleArithmetic:
		req.Arithmetic = new(arithmetic.Settings)
		target = req.Arithmetic
	case ModuleFractions:
		req.Fractions = new(fractions.Settings)
		target = req.Fractions
	case ModuleDecimals:
		req.Decimals = new(decimals.Settings)
		target = req.Decimals
	case ModulePlaceValue:
		req.PlaceValue = new(placevalue.Settings)
		target = req.PlaceValue
	case ModuleMeasurement:
		req.Measurement = new(measurement.Settings)
		target = req.Measurement
	case ModuleGeometry:
		req.Geometry = new(geometry.Settings)
		target = req.Geometry
	case ModuleTime:
		req.Time = new(clocktime.Settings)
		target = req.Time
	case ModuleRhythm:
		req.Rhythm = new(rhythm.Settings)
		target = req.Rhythm
	case ModuleReadiness:
		req.Readiness = new(readiness.Settings)
		target = req.Readiness
	case ModuleAttention:
		req.Attention = new(attention.Settings)
		target = req.Attention
	case ModuleMapReading:
		req.MapReading = new(mapreading.Settings)
		target = req.MapReading
	case ModuleAI:
		req.AI = new(problemgen.Settings)
		target = req.AI
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return req, fmt.Errorf("decode %s settings: %w", module, err)
	}
	return req, nil
}
