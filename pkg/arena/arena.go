package arena

import (
	"errors"
	"reflect"
)

// DefaultChunkSize is the number of slots in each chunk of a per-type slab.
const DefaultChunkSize = 64

var (
	// ErrScopeActive is returned when Open is called while a scope is open.
	ErrScopeActive = errors.New("arena: scope already open")
	// ErrScopeClosed is returned (or panicked with) when a closed scope is used.
	ErrScopeClosed = errors.New("arena: scope closed")
	// ErrLeaseExpired reports a lease checked after its scope closed.
	ErrLeaseExpired = errors.New("arena: lease expired")
)

// Stats describes arena usage.
type Stats struct {
	// Scopes is the number of scopes closed so far.
	Scopes uint64
	// Allocs is the number of slots served by the current or last scope.
	Allocs int
	// PeakAllocs is the largest Allocs seen over all scopes.
	PeakAllocs int
	// Chunks is the number of chunks held across all slabs.
	Chunks int
	// Types is the number of distinct types allocated so far.
	Types int
}

// Option configures an Arena.
type Option func(*Arena)

// WithChunkSize sets the number of slots per chunk. Values below 1 are ignored.
func WithChunkSize(n int) Option {
	return func(a *Arena) {
		if n > 0 {
			a.chunkSize = n
		}
	}
}

// Arena serves per-cycle allocations. It is not safe for concurrent use;
// it belongs to the single control thread that runs update cycles.
type Arena struct {
	gen       uint64
	open      *Scope
	chunkSize int
	slabs     map[reflect.Type]slabber
	order     []slabber
	stats     Stats
}

// New creates an empty Arena.
func New(opts ...Option) *Arena {
	a := &Arena{
		chunkSize: DefaultChunkSize,
		slabs:     make(map[reflect.Type]slabber),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Open begins a new allocation scope. Every lease taken in an earlier
// scope is invalid from this point on.
func (a *Arena) Open() (*Scope, error) {
	if a.open != nil {
		return nil, ErrScopeActive
	}
	a.gen++
	a.stats.Allocs = 0
	s := &Scope{arena: a, gen: a.gen}
	a.open = s
	return s, nil
}

// Active reports whether a scope is currently open.
func (a *Arena) Active() bool {
	return a.open != nil
}

// Scoped opens a scope, runs fn and closes the scope, also when fn panics.
func (a *Arena) Scoped(fn func(s *Scope)) error {
	s, err := a.Open()
	if err != nil {
		return err
	}
	defer s.Close()
	fn(s)
	return nil
}

// Stats returns a snapshot of arena usage.
func (a *Arena) Stats() Stats {
	st := a.stats
	st.Types = len(a.order)
	st.Chunks = 0
	for _, sl := range a.order {
		st.Chunks += sl.chunks()
	}
	return st
}

func (a *Arena) close(s *Scope) error {
	if a.open != s || s.gen != a.gen {
		return ErrScopeClosed
	}
	for _, sl := range a.order {
		sl.reset()
	}
	a.open = nil
	// Advance past the closed generation so leases expire immediately,
	// not only once the next scope opens.
	a.gen++
	a.stats.Scopes++
	if a.stats.Allocs > a.stats.PeakAllocs {
		a.stats.PeakAllocs = a.stats.Allocs
	}
	return nil
}

// Scope is one open allocation window. Its Close is the only way to
// release the memory served through it.
type Scope struct {
	arena *Arena
	gen   uint64
}

// Close zeroes and recycles every slot served since Open.
func (s *Scope) Close() error {
	if s == nil || s.arena == nil {
		return ErrScopeClosed
	}
	return s.arena.close(s)
}

// Live reports whether the scope is still open.
func (s *Scope) Live() bool {
	return s != nil && s.arena != nil && s.arena.open == s && s.arena.gen == s.gen
}

// Lease returns a token that stays live exactly as long as the scope.
func (s *Scope) Lease() Lease {
	s.mustLive()
	return Lease{arena: s.arena, gen: s.gen}
}

func (s *Scope) mustLive() {
	if !s.Live() {
		panic(ErrScopeClosed)
	}
}

// Lease ties a value to the scope it was allocated in. The zero Lease
// belongs to no scope and is always live.
type Lease struct {
	arena *Arena
	gen   uint64
}

// Live reports whether the lease's scope is still open.
func (l Lease) Live() bool {
	if l.arena == nil {
		return true
	}
	return l.arena.open != nil && l.arena.gen == l.gen
}

// Check returns ErrLeaseExpired if the lease's scope has closed.
func (l Lease) Check() error {
	if !l.Live() {
		return ErrLeaseExpired
	}
	return nil
}

// Scoped reports whether the lease belongs to an arena scope.
func (l Lease) Scoped() bool {
	return l.arena != nil
}
