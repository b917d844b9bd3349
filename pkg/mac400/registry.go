package mac400

import (
	"fmt"
	"sort"
)

// Registry provides lookup over the MAC400 register map, by name or by bus
// word address. A Registry is immutable once built and safe for concurrent
// use without locking.
type Registry struct {
	table  []Register
	byName map[string]Register
}

// NewRegistry builds a registry over the full register map.
func NewRegistry() *Registry {
	byName := make(map[string]Register, len(registers))
	for _, reg := range registers {
		byName[reg.Name] = reg
	}
	return &Registry{table: registers, byName: byName}
}

// defaultRegistry is built once at startup and never mutated.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry over the full register
// map. Callers that want to inject their own value can construct one with
// NewRegistry instead.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Registers returns the register map sorted ascending by number. The caller
// receives its own copy.
func (r *Registry) Registers() []Register {
	out := make([]Register, len(r.table))
	copy(out, r.table)
	return out
}

// ForName looks up a register by its exact manual name. It returns
// ErrUnknownRegister if no register has that name.
func (r *Registry) ForName(name string) (Register, error) {
	reg, ok := r.byName[name]
	if !ok {
		return Register{}, fmt.Errorf("%w: no register named %q", ErrUnknownRegister, name)
	}
	return reg, nil
}

// ForAddress looks up the register occupying a bus word address. Each
// register spans the two addresses 2*Num and 2*Num+1; the table is sorted
// and the spans never overlap, so a binary search on the span's upper word
// finds the only candidate. It returns ErrUnknownRegister for addresses in
// a reserved gap or beyond the table.
func (r *Registry) ForAddress(addr uint16) (Register, error) {
	i := sort.Search(len(r.table), func(i int) bool {
		_, hi := r.table[i].Addr()
		return hi >= addr
	})
	if i < len(r.table) {
		lo, hi := r.table[i].Addr()
		if addr == lo || addr == hi {
			return r.table[i], nil
		}
	}
	return Register{}, fmt.Errorf("%w: no register at address %d", ErrUnknownRegister, addr)
}
