// Package shots holds shot-location records and their loaders.
package shots

import (
	"errors"

	"courtview/internal/geom"
)

var (
	ErrNoShots         = errors.New("shots: no shots found")
	ErrMissingColumns  = errors.New("shots: LOC_X/LOC_Y columns not found")
	errUnsupportedFile = errors.New("shots: unsupported file type")
)

// Shot is one field goal attempt. X and Y are court units relative to the
// hoop (LOC_X, LOC_Y).
type Shot struct {
	GameID     string
	EventID    int
	PlayerID   int
	PlayerName string
	TeamID     int
	TeamName   string
	Period     int
	ActionType string
	ShotType   string
	ZoneBasic  string
	Distance   float64
	X          float64
	Y          float64
	Made       bool
}

// Point returns the shot location.
func (s Shot) Point() [2]float64 { return [2]float64{s.X, s.Y} }

// Set is an ordered collection of shots.
type Set struct {
	Source string
	Shots  []Shot
}

func (s Set) Len() int { return len(s.Shots) }

func (s Set) filter(made bool) [][2]float64 {
	var out [][2]float64
	for _, sh := range s.Shots {
		if sh.Made == made {
			out = append(out, sh.Point())
		}
	}
	return out
}

// Made returns the locations of made shots.
func (s Set) Made() [][2]float64 { return s.filter(true) }

// Missed returns the locations of missed shots.
func (s Set) Missed() [][2]float64 { return s.filter(false) }

// Points returns every shot location in order.
func (s Set) Points() [][2]float64 {
	out := make([][2]float64, len(s.Shots))
	for i, sh := range s.Shots {
		out[i] = sh.Point()
	}
	return out
}

// BBox returns the extent of the shots and false for an empty set.
func (s Set) BBox() (geom.BBox, bool) {
	return geom.BBoxOf(s.Points())
}

// FieldGoalPct returns made/attempted, or 0 for an empty set.
func (s Set) FieldGoalPct() float64 {
	if len(s.Shots) == 0 {
		return 0
	}
	made := 0
	for _, sh := range s.Shots {
		if sh.Made {
			made++
		}
	}
	return float64(made) / float64(len(s.Shots))
}

// Nearest returns the index of the shot closest to p, or -1.
func (s Set) Nearest(p [2]float64) int {
	best, bestD := -1, 0.0
	for i, sh := range s.Shots {
		dx, dy := sh.X-p[0], sh.Y-p[1]
		d := dx*dx + dy*dy
		if best < 0 || d < bestD {
			best, bestD = i, d
		}
	}
	return best
}
