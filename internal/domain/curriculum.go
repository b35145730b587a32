package domain

import (
	"cmp"
	"fmt"
	"iter"
)

const (
	// MinKidem is the first tier a learner starts in.
	MinKidem = 1
	// MaxLevel is the number of levels in one kıdem.
	MaxLevel = 100
	// MaxBolum is the number of bölüms in one level.
	MaxBolum = 12
)

// Position is a pointer into the curriculum: one (kidem, level, bolum) triple.
type Position struct {
	Kidem int `json:"kidem"`
	Level int `json:"level"`
	Bolum int `json:"bolum"`
}

// StartPosition is where every new learner begins.
func StartPosition() Position {
	return Position{Kidem: MinKidem, Level: 1, Bolum: 1}
}

func (p Position) String() string {
	return fmt.Sprintf("kidem %d level %d bolum %d", p.Kidem, p.Level, p.Bolum)
}

// Validate checks the position against the curriculum bounds.
func (p Position) Validate() error {
	if p.Kidem < MinKidem {
		return NewInvalidInputError(fmt.Sprintf("kidem must be >= %d, got %d", MinKidem, p.Kidem))
	}
	if p.Level < 1 || p.Level > MaxLevel {
		return NewInvalidInputError(fmt.Sprintf("level must be in [1,%d], got %d", MaxLevel, p.Level))
	}
	if p.Bolum < 1 || p.Bolum > MaxBolum {
		return NewInvalidInputError(fmt.Sprintf("bolum must be in [1,%d], got %d", MaxBolum, p.Bolum))
	}
	return nil
}

// Next returns the position after p. A bölüm past 12 wraps to the next level,
// a level past 100 wraps to the next kıdem.
func (p Position) Next() Position {
	next := Position{Kidem: p.Kidem, Level: p.Level, Bolum: p.Bolum + 1}
	if next.Bolum > MaxBolum {
		next.Bolum = 1
		next.Level++
	}
	if next.Level > MaxLevel {
		next.Level = 1
		next.Kidem++
	}
	return next
}

// Compare orders positions kidem-major, then level, then bolum.
func (p Position) Compare(o Position) int {
	if c := cmp.Compare(p.Kidem, o.Kidem); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Level, o.Level); c != 0 {
		return c
	}
	return cmp.Compare(p.Bolum, o.Bolum)
}

// CurriculumUnit is one addressable unit plus the enabled exam tracks with content for it.
type CurriculumUnit struct {
	Position
	Tracks []ExamTrack `json:"tracks"`
}

// HasTrack reports whether the unit is tagged with track.
func (u CurriculumUnit) HasTrack(track ExamTrack) bool {
	for _, t := range u.Tracks {
		if t == track {
			return true
		}
	}
	return false
}

// EnumerateUnits yields every unit of a kıdem in unlock order (level-major, bolum-minor).
// Each unit is tagged with all tracks enabled in prefs. With no track enabled the
// sequence is empty, which callers must read as incomplete onboarding.
func EnumerateUnits(kidem int, prefs ExamPreferences) iter.Seq[CurriculumUnit] {
	tracks := prefs.EnabledTracks()
	return func(yield func(CurriculumUnit) bool) {
		if len(tracks) == 0 || kidem < MinKidem {
			return
		}
		for level := 1; level <= MaxLevel; level++ {
			for bolum := 1; bolum <= MaxBolum; bolum++ {
				unit := CurriculumUnit{
					Position: Position{Kidem: kidem, Level: level, Bolum: bolum},
					Tracks:   append([]ExamTrack(nil), tracks...),
				}
				if !yield(unit) {
					return
				}
			}
		}
	}
}

// UnitsForLevel returns the twelve units of one level, in order.
func UnitsForLevel(kidem, level int, prefs ExamPreferences) []CurriculumUnit {
	units := make([]CurriculumUnit, 0, MaxBolum)
	for u := range EnumerateUnits(kidem, prefs) {
		if u.Level < level {
			continue
		}
		if u.Level > level {
			break
		}
		units = append(units, u)
	}
	return units
}

// IsUnlocked reports whether unit sits at or before the learner's current level and bölüm.
func IsUnlocked(unit CurriculumUnit, currentLevel, currentBolum int) bool {
	if unit.Level != currentLevel {
		return unit.Level < currentLevel
	}
	return unit.Bolum <= currentBolum
}

// IsActive reports whether unit is exactly the learner's current level and bölüm.
func IsActive(unit CurriculumUnit, currentLevel, currentBolum int) bool {
	return unit.Level == currentLevel && unit.Bolum == currentBolum
}

// UnitState is the state of a unit relative to a learner's position.
type UnitState string

const (
	UnitLocked   UnitState = "locked"
	UnitUnlocked UnitState = "unlocked"
	UnitActive   UnitState = "active"
)

// StateOf classifies unit against the learner's current position. Units of an
// earlier kıdem are always unlocked, units of a later kıdem always locked.
func StateOf(unit CurriculumUnit, current Position) UnitState {
	switch {
	case unit.Kidem < current.Kidem:
		return UnitUnlocked
	case unit.Kidem > current.Kidem:
		return UnitLocked
	case IsActive(unit, current.Level, current.Bolum):
		return UnitActive
	case IsUnlocked(unit, current.Level, current.Bolum):
		return UnitUnlocked
	default:
		return UnitLocked
	}
}
