package pool

import "git.lost.host/meutraa/saber/internal/beat"

// set keeps beats in insertion order with O(1) add and remove. Removal
// leaves a hole that is compacted away before the next walk, so beats may
// leave the set while it is being walked.
type set struct {
	items []*beat.Beat
	index map[*beat.Beat]int
	holes int
}

func newSet(capacity int) *set {
	return &set{
		items: make([]*beat.Beat, 0, capacity),
		index: make(map[*beat.Beat]int, capacity),
	}
}

func (s *set) add(b *beat.Beat) bool {
	if _, ok := s.index[b]; ok {
		return false
	}
	s.index[b] = len(s.items)
	s.items = append(s.items, b)
	return true
}

func (s *set) remove(b *beat.Beat) bool {
	i, ok := s.index[b]
	if !ok {
		return false
	}
	delete(s.index, b)
	s.items[i] = nil
	s.holes++
	return true
}

func (s *set) contains(b *beat.Beat) bool {
	_, ok := s.index[b]
	return ok
}

func (s *set) len() int { return len(s.index) }

func (s *set) each(fn func(*beat.Beat)) {
	s.compact()
	// Re-read the length: fn may add beats, which are walked too.
	for i := 0; i < len(s.items); i++ {
		if b := s.items[i]; b != nil {
			fn(b)
		}
	}
}

func (s *set) compact() {
	if s.holes == 0 {
		return
	}
	n := 0
	for _, b := range s.items {
		if b == nil {
			continue
		}
		s.items[n] = b
		s.index[b] = n
		n++
	}
	for i := n; i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = s.items[:n]
	s.holes = 0
}
