package terrain

import (
	"errors"
	"testing"
)

func TestDefaultParametersAreValid(t *testing.T) {
	if err := DefaultParameters().Validate(); err != nil {
		t.Errorf("Default parameters should be valid, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"zero height", func(p *Parameters) { p.GeneratedMapSize.Height = 0 }},
		{"negative width", func(p *Parameters) { p.GeneratedMapSize.Width = -3 }},
		{"density below range", func(p *Parameters) { p.AcidLakesDensity = -1 }},
		{"density above range", func(p *Parameters) { p.AcidLakesDensity = 101 }},
		{"zero iterations", func(p *Parameters) { p.AcidLakesIterations = 0 }},
		{"zero path part", func(p *Parameters) { p.PathPartMaxLength = 0 }},
		{"zero canyon width", func(p *Parameters) { p.CanyonsWidth = 0 }},
		{"zero vertical period", func(p *Parameters) { p.VerticalCanyonsPeriod = 0 }},
		{"negative horizontal period", func(p *Parameters) { p.HorizontalCanyonsPeriod = -2 }},
		{"negative start", func(p *Parameters) { p.StartPartLength = -1 }},
		{"negative end", func(p *Parameters) { p.EndPartLength = -1 }},
		{"negative border", func(p *Parameters) { p.BorderWidth = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("Expected ErrInvalidParameters, got %v", err)
			}
		})
	}
}

func TestValidateAllowsDensityBounds(t *testing.T) {
	for _, density := range []int{0, 100} {
		p := DefaultParameters()
		p.AcidLakesDensity = density
		if err := p.Validate(); err != nil {
			t.Errorf("Density %d should be valid, got %v", density, err)
		}
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	p := DefaultParameters()
	p.GeneratedMapSize = Size{}
	p.CanyonsWidth = 0

	err := p.Validate()
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("Expected joined errors, got %T", err)
	}
	if n := len(joined.Unwrap()); n != 3 {
		t.Errorf("Expected 3 violations, got %d: %v", n, err)
	}
}

func TestFinalSize(t *testing.T) {
	p := DefaultParameters()
	p.GeneratedMapSize = Size{Height: 10, Width: 10}
	p.StartPartLength = 3
	p.EndPartLength = 2
	p.BorderWidth = 1

	size := p.FinalSize()
	if size.Height != 17 || size.Width != 12 {
		t.Errorf("Expected 17x12, got %dx%d", size.Height, size.Width)
	}

	row, col := p.RegionOrigin()
	if row != 4 || col != 1 {
		t.Errorf("Expected region origin (4,1), got (%d,%d)", row, col)
	}
}
