package game

// State is a target's position in its lifecycle.
type State uint8

const (
	Pooled State = iota
	Spawning
	WarmingUp
	Live
	Resolved
	CoolingDown
)

var stateNames = [...]string{"pooled", "spawning", "warming-up", "live", "resolved", "cooling-down"}

func (s State) String() string { return name(stateNames[:], int(s)) }

// Resolution is how a resolved target was judged.
type Resolution uint8

const (
	Unresolved Resolution = iota
	Hit
	WrongHit
	Miss
	HazardHit
)

var resolutionNames = [...]string{"unresolved", "hit", "wrong", "miss", "hazard-hit"}

func (r Resolution) String() string { return name(resolutionNames[:], int(r)) }
