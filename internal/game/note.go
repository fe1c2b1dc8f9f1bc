package game

// Note is one chart entry: a target due at Time on the song timeline.
type Note struct {
	Time  float64 // Song position the target is due at
	Type  BeatType
	Color Color
	Lane  Lane
	Row   Row
	Cut   CutDirection
}

// PoolKey names the pool a target for this note is drawn from.
func (n *Note) PoolKey() string {
	return PoolKey(n.Type, n.Color)
}

func PoolKey(t BeatType, c Color) string {
	if t == Hazard {
		return "beat-mine"
	}
	return "beat-" + t.String() + "-" + c.String()
}
