package terrain

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is wrapped by every parameter validation failure.
var ErrInvalidParameters = errors.New("terrain: invalid generation parameters")

// Size is the height x width of a rectangular area.
type Size struct {
	Height int `json:"height"` // Rows along the depth axis
	Width  int `json:"width"`  // Columns along the lateral axis
}

// Parameters configures a single map generation.
type Parameters struct {
	// AcidLakesDensity is the percentage of the region that starts as acid.
	// A cell is seeded as mountain with probability 100 - density.
	AcidLakesDensity int `json:"acidLakesDensity"`
	// AcidLakesIterations is the number of smoothing passes over the seed noise.
	AcidLakesIterations int `json:"acidLakesIterations"`
	// PathPartMaxLength caps a straight corridor run before it jogs sideways.
	PathPartMaxLength int `json:"pathPartMaxLength"`
	// CanyonsWidth is the thickness of every corridor.
	CanyonsWidth int `json:"canyonsWidth"`
	// VerticalCanyonsPeriod is the column spacing between vertical corridors.
	VerticalCanyonsPeriod int `json:"verticalCanyonsPeriod"`
	// HorizontalCanyonsPeriod is the row spacing between horizontal corridors.
	HorizontalCanyonsPeriod int `json:"horizontalCanyonsPeriod"`

	StartPartLength  int  `json:"startPartLength"`  // Ground rows before the region
	EndPartLength    int  `json:"endPartLength"`    // Ground rows after the region
	BorderWidth      int  `json:"borderWidth"`      // Border padding on every side
	GeneratedMapSize Size `json:"generatedMapSize"` // Stochastic region size
}

// DefaultParameters returns the stock tuning with a 40x30 region and no acid
// density set.
func DefaultParameters() Parameters {
	return Parameters{
		AcidLakesDensity:        0,
		AcidLakesIterations:     2,
		PathPartMaxLength:       3,
		CanyonsWidth:            2,
		VerticalCanyonsPeriod:   10,
		HorizontalCanyonsPeriod: 6,
		StartPartLength:         10,
		EndPartLength:           10,
		BorderWidth:             5,
		GeneratedMapSize:        Size{Height: 40, Width: 30},
	}
}

// Validate checks every precondition of the generator and returns all
// violations joined together. Out-of-range values are never clamped.
func (p Parameters) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameters}, args...)...))
		}
	}

	check(p.GeneratedMapSize.Height > 0, "generated map height %d must be positive", p.GeneratedMapSize.Height)
	check(p.GeneratedMapSize.Width > 0, "generated map width %d must be positive", p.GeneratedMapSize.Width)
	check(p.AcidLakesDensity >= 0 && p.AcidLakesDensity <= 100, "acid lakes density %d outside [0,100]", p.AcidLakesDensity)
	check(p.AcidLakesIterations > 0, "acid lakes iterations %d must be positive", p.AcidLakesIterations)
	check(p.PathPartMaxLength > 0, "path part max length %d must be positive", p.PathPartMaxLength)
	check(p.CanyonsWidth > 0, "canyons width %d must be positive", p.CanyonsWidth)
	check(p.VerticalCanyonsPeriod > 0, "vertical canyons period %d must be positive", p.VerticalCanyonsPeriod)
	check(p.HorizontalCanyonsPeriod > 0, "horizontal canyons period %d must be positive", p.HorizontalCanyonsPeriod)
	check(p.StartPartLength >= 0, "start part length %d must not be negative", p.StartPartLength)
	check(p.EndPartLength >= 0, "end part length %d must not be negative", p.EndPartLength)
	check(p.BorderWidth >= 0, "border width %d must not be negative", p.BorderWidth)

	return errors.Join(errs...)
}

// FinalSize returns the dimensions of the assembled map:
// (height + start + end + 2*border) x (width + 2*border).
func (p Parameters) FinalSize() Size {
	return Size{
		Height: p.GeneratedMapSize.Height + p.StartPartLength + p.EndPartLength + 2*p.BorderWidth,
		Width:  p.GeneratedMapSize.Width + 2*p.BorderWidth,
	}
}

// RegionOrigin returns the row and column of the assembled map at which the
// generated region's (0,0) cell is placed.
func (p Parameters) RegionOrigin() (row, col int) {
	return p.StartPartLength + p.BorderWidth, p.BorderWidth
}

// fillPercent is the probability, in percent, that a noise cell is seeded
// as mountain.
func (p Parameters) fillPercent() int {
	return 100 - p.AcidLakesDensity
}
