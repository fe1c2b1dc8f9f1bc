package game

import "math"

const (
	minBottomHeight = 0.4
	bottomHeight    = 0.9
	standingHeight  = 1.6
)

// RowHeights holds the settled height of each row above the path.
type RowHeights [RowCount]float64

// NewRowHeights fits the rows to the player's head height. Punch mode packs
// rows tighter.
func NewRowHeights(mode Mode, cameraHeight float64) RowHeights {
	margin := 0.5
	if mode == ModePunch {
		margin = 0.4
	}
	offset := cameraHeight - standingHeight
	return RowHeights{
		Bottom: math.Max(minBottomHeight, bottomHeight+offset),
		Middle: math.Max(minBottomHeight+margin, bottomHeight+margin+offset),
		Top:    math.Max(minBottomHeight+margin*2, bottomHeight+margin*2+offset),
	}
}

func (h *RowHeights) Height(r Row) float64 { return h[r] }
