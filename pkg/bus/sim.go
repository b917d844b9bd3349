package bus

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Sim is an in-memory word store implementing Conn. It stands in for a real
// drive in tests and in the CLI's offline mode: reads of unwritten addresses
// return zero, writes always succeed.
type Sim struct {
	mu    sync.Mutex
	words map[uint16]uint16
}

// NewSim returns a simulated drive with all words zeroed.
func NewSim() *Sim {
	return &Sim{words: make(map[uint16]uint16)}
}

// ReadWords reads the word pair at (addr, addr+1).
func (s *Sim) ReadWords(addr uint16) (lo, hi uint16, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.words[addr], s.words[addr+1], nil
}

// WriteWords writes the word pair at (addr, addr+1).
func (s *Sim) WriteWords(addr, lo, hi uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words[addr] = lo
	s.words[addr+1] = hi
	return nil
}

// LoadState replaces the simulator's word store with JSON state previously
// written by SaveState.
func (s *Sim) LoadState(r io.Reader) error {
	var words map[uint16]uint16
	if err := json.NewDecoder(r).Decode(&words); err != nil {
		return fmt.Errorf("bus: failed to load simulator state: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = words
	if s.words == nil {
		s.words = make(map[uint16]uint16)
	}
	return nil
}

// SaveState writes the simulator's nonzero words as JSON.
func (s *Sim) SaveState(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[uint16]uint16, len(s.words))
	for addr, word := range s.words {
		if word != 0 {
			out[addr] = word
		}
	}
	if err := json.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("bus: failed to save simulator state: %w", err)
	}
	return nil
}
