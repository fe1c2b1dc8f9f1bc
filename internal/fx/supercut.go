package fx

// SuperCuts hands out super-cut effect slots round robin.
type SuperCuts struct {
	slots int
	next  int
}

func NewSuperCuts(slots int) *SuperCuts {
	if slots < 1 {
		slots = 1
	}
	return &SuperCuts{slots: slots}
}

func (s *SuperCuts) Next() int {
	i := s.next
	s.next = (s.next + 1) % s.slots
	return i
}
