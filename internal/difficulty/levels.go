package difficulty

import (
	"errors"
	"fmt"

	"github.com/samdwyer/acidrun/internal/terrain"
)

var (
	// ErrNoLevels is returned when a level table has no entries.
	ErrNoLevels = errors.New("difficulty: no levels defined")
	// ErrNegativeDifficulty is returned when looking up a tier below zero.
	ErrNegativeDifficulty = errors.New("difficulty: negative difficulty")
	// ErrInvalidLevel wraps any level definition that fails validation.
	ErrInvalidLevel = errors.New("difficulty: invalid level")
)

// Difficulty is a zero-based difficulty tier. It is passed explicitly to
// level setup; nothing in the game keeps a process-wide counter.
type Difficulty int

// Next returns the tier that follows d.
func (d Difficulty) Next() Difficulty {
	return d + 1
}

// Vector3 is a velocity in world units per second.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LevelDef defines the tuning of a single difficulty tier loaded from JSON.
type LevelDef struct {
	Generation       terrain.Parameters `json:"generation"`       // Map generation parameters
	OxygenChunkSize  int                `json:"oxygenChunkSize"`  // Side of each oxygen sampling window
	StartOxygen      int                `json:"startOxygen"`      // Oxygen the astronaut starts with
	OxygenTankAmount int                `json:"oxygenTankAmount"` // Oxygen held by each pickup
	SandstormSpeed   Vector3            `json:"sandstormSpeed"`   // Speed of the chasing sandstorm
}

// Validate checks the level's generation parameters and oxygen tuning.
func (l LevelDef) Validate() error {
	var errs []error
	if err := l.Generation.Validate(); err != nil {
		errs = append(errs, err)
	}
	if l.OxygenChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("oxygen chunk size %d must be positive", l.OxygenChunkSize))
	}
	if l.StartOxygen < 0 {
		errs = append(errs, fmt.Errorf("start oxygen %d must not be negative", l.StartOxygen))
	}
	if l.OxygenTankAmount < 0 {
		errs = append(errs, fmt.Errorf("oxygen tank amount %d must not be negative", l.OxygenTankAmount))
	}
	return errors.Join(errs...)
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}
