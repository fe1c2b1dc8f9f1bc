package game

type Chart struct {
	Name      string
	Notes     []*Note // Sorted by Time
	NoteCount int64
	MineCount int64
}
