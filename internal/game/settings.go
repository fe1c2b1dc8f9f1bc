package game

// Settings is the mode configuration the host feeds the judging core. The
// core only reads it.
type Settings struct {
	Mode              Mode
	HasImmersiveInput bool
	IsPlaying         bool
	IsLoading         bool
	// SyncTest auto-hits every target as it reaches the player.
	SyncTest bool
}
