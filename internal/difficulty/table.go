package difficulty

import "fmt"

// Table holds the ordered level definitions, easiest first.
type Table struct {
	levels []LevelDef
}

// NewTable validates levels and creates a table from them.
func NewTable(levels []LevelDef) (*Table, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	for i, level := range levels {
		if err := level.Validate(); err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrInvalidLevel, i, err)
		}
	}
	return &Table{levels: levels}, nil
}

// LoadTable loads the level table from the embedded levels.json.
func LoadTable() (*Table, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return NewTable(file.Levels)
}

// LoadTableFile loads a level table from a JSON file on disk.
func LoadTableFile(path string) (*Table, error) {
	file, err := LoadFile[LevelsFile](path)
	if err != nil {
		return nil, err
	}
	return NewTable(file.Levels)
}

// MustLoadTable loads the embedded table, panicking on error.
func MustLoadTable() *Table {
	table, err := LoadTable()
	if err != nil {
		panic(err)
	}
	return table
}

// Level returns the definition for tier d. Tiers past the end of the table
// reuse the hardest level.
func (t *Table) Level(d Difficulty) (LevelDef, error) {
	if d < 0 {
		return LevelDef{}, fmt.Errorf("%w: %d", ErrNegativeDifficulty, d)
	}
	if int(d) < len(t.levels) {
		return t.levels[d], nil
	}
	return t.levels[len(t.levels)-1], nil
}

// Count returns the number of distinct levels in the table.
func (t *Table) Count() int {
	return len(t.levels)
}
