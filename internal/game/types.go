package game

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownValue = errors.New("unknown value")

// Mode selects the weapon pair and whether collisions are judged at all.
type Mode uint8

const (
	ModeClassic Mode = iota
	ModePunch
	ModeRide
)

var modeNames = [...]string{"classic", "punch", "ride"}

func (m Mode) String() string { return name(modeNames[:], int(m)) }

func ParseMode(s string) (Mode, error) {
	i, err := parse(modeNames[:], "mode", s)
	return Mode(i), err
}

// BeatType is the category of a target.
type BeatType uint8

const (
	Directional BeatType = iota // arrow
	Stationary                  // dot
	Hazard                      // mine
)

var beatTypeNames = [...]string{"arrow", "dot", "mine"}

func (t BeatType) String() string { return name(beatTypeNames[:], int(t)) }

func ParseBeatType(s string) (BeatType, error) {
	i, err := parse(beatTypeNames[:], "type", s)
	return BeatType(i), err
}

type Color uint8

const (
	Red Color = iota
	Blue
)

var colorNames = [...]string{"red", "blue"}

func (c Color) String() string { return name(colorNames[:], int(c)) }

func ParseColor(s string) (Color, error) {
	i, err := parse(colorNames[:], "color", s)
	return Color(i), err
}

type Hand uint8

const (
	LeftHand Hand = iota
	RightHand
)

func (h Hand) String() string {
	if h == RightHand {
		return "right"
	}
	return "left"
}

// Color is the beat color this hand is expected to strike.
func (h Hand) Color() Color {
	if h == RightHand {
		return Blue
	}
	return Red
}

// Lane is the discrete horizontal slot.
type Lane uint8

const (
	FarLeft Lane = iota
	MidLeft
	MidRight
	FarRight
	LaneCount = 4
)

var laneNames = [...]string{"left", "middleleft", "middleright", "right"}
var laneOffsets = [...]float64{-0.5, -0.18, 0.18, 0.5}

func (l Lane) String() string { return name(laneNames[:], int(l)) }

// Offset is the sideways displacement from the path centre.
func (l Lane) Offset() float64 { return laneOffsets[l] }

func ParseLane(s string) (Lane, error) {
	i, err := parse(laneNames[:], "lane", s)
	return Lane(i), err
}

// Row is the discrete vertical slot.
type Row uint8

const (
	Bottom Row = iota
	Middle
	Top
	RowCount = 3
)

var rowNames = [...]string{"bottom", "middle", "top"}

func (r Row) String() string { return name(rowNames[:], int(r)) }

func ParseRow(s string) (Row, error) {
	i, err := parse(rowNames[:], "row", s)
	return Row(i), err
}

// Cell packs a lane and row into a single index in [0, LaneCount*RowCount).
func Cell(l Lane, r Row) int { return int(r)*LaneCount + int(l) }

type CutDirection uint8

const (
	CutNone CutDirection = iota
	CutUp
	CutDown
	CutLeft
	CutRight
	CutUpLeft
	CutUpRight
	CutDownLeft
	CutDownRight
)

var cutNames = [...]string{"none", "up", "down", "left", "right", "upleft", "upright", "downleft", "downright"}

var cutRotations = [...]float64{
	CutUp:        90,
	CutDown:      270,
	CutLeft:      180,
	CutRight:     0,
	CutUpLeft:    135,
	CutUpRight:   45,
	CutDownLeft:  225,
	CutDownRight: 315,
}

var cutVectors = [...]Vec3{
	CutUp:        {0, 1, 0},
	CutDown:      {0, -1, 0},
	CutLeft:      {-1, 0, 0},
	CutRight:     {1, 0, 0},
	CutUpLeft:    Vec3{-1, 1, 0}.Normalize(),
	CutUpRight:   Vec3{1, 1, 0}.Normalize(),
	CutDownLeft:  Vec3{-1, -1, 0}.Normalize(),
	CutDownRight: Vec3{1, -1, 0}.Normalize(),
}

func (c CutDirection) String() string { return name(cutNames[:], int(c)) }

// Degrees is the roll applied to a directional beat so its arrow points along the cut.
func (c CutDirection) Degrees() float64 { return cutRotations[c] }

// Vector is the unit stroke direction the cut asks for. CutNone has no direction.
func (c CutDirection) Vector() Vec3 { return cutVectors[c] }

// ParseCutDirection accepts the empty string as CutNone.
func ParseCutDirection(s string) (CutDirection, error) {
	if s == "" {
		return CutNone, nil
	}
	i, err := parse(cutNames[:], "cut direction", s)
	return CutDirection(i), err
}

func name(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

func parse(names []string, kind, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownValue, "%s %q (allowed: %s)", kind, s, strings.Join(names, ", "))
}
