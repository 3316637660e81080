package search

import "sync/atomic"

// Stats counts discovery work across cell workers. All counters are
// safe for concurrent use.
type Stats struct {
	pairsChecked   int64
	triplesChecked int64
	accepted       int64
}

func (s *Stats) addPair()     { atomic.AddInt64(&s.pairsChecked, 1) }
func (s *Stats) addTriple()   { atomic.AddInt64(&s.triplesChecked, 1) }
func (s *Stats) addAccepted() { atomic.AddInt64(&s.accepted, 1) }

// PairsChecked returns the number of pair evaluations so far.
func (s *Stats) PairsChecked() int64 {
	return atomic.LoadInt64(&s.pairsChecked)
}

// TriplesChecked returns the number of triple evaluations so far.
func (s *Stats) TriplesChecked() int64 {
	return atomic.LoadInt64(&s.triplesChecked)
}

// Accepted returns the number of accepted candidate interactions.
func (s *Stats) Accepted() int64 {
	return atomic.LoadInt64(&s.accepted)
}

// Reset zeroes all counters, typically at the start of a timestep.
func (s *Stats) Reset() {
	atomic.StoreInt64(&s.pairsChecked, 0)
	atomic.StoreInt64(&s.triplesChecked, 0)
	atomic.StoreInt64(&s.accepted, 0)
}
