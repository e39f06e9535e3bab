package arena

import "reflect"

type slabber interface {
	reset()
	chunks() int
}

// slab is a chunked bump allocator for one element type. Chunks are kept
// across scopes; reset zeroes the used prefix of each and rewinds.
type slab[T any] struct {
	size  int
	store [][]T
	cur   int
	off   int
}

func (s *slab[T]) take(n int) []T {
	for s.cur < len(s.store) {
		chunk := s.store[s.cur]
		if len(chunk)-s.off >= n {
			out := chunk[s.off : s.off+n : s.off+n]
			s.off += n
			return out
		}
		if s.off == 0 {
			// Empty chunk too small for n: keep looking, a bigger one may follow.
			s.cur++
			continue
		}
		s.cur++
		s.off = 0
	}
	size := s.size
	if n > size {
		size = n
	}
	s.store = append(s.store, make([]T, size))
	s.cur = len(s.store) - 1
	s.off = n
	return s.store[s.cur][:n:n]
}

func (s *slab[T]) reset() {
	for i := 0; i < len(s.store) && i <= s.cur; i++ {
		clear(s.store[i])
	}
	s.cur = 0
	s.off = 0
}

func (s *slab[T]) chunks() int {
	return len(s.store)
}

func slabFor[T any](a *Arena) *slab[T] {
	t := reflect.TypeFor[T]()
	if sl, ok := a.slabs[t]; ok {
		return sl.(*slab[T])
	}
	sl := &slab[T]{size: a.chunkSize}
	a.slabs[t] = sl
	a.order = append(a.order, sl)
	return sl
}

// Make copies v into the scope and returns a pointer to the copy.
// It panics with ErrScopeClosed if the scope is not open.
func Make[T any](s *Scope, v T) *T {
	s.mustLive()
	p := &slabFor[T](s.arena).take(1)[0]
	*p = v
	s.arena.stats.Allocs++
	return p
}

// MakeSlice returns a zeroed slice of n elements served from the scope.
// Its capacity is n, so appending past it reallocates on the Go heap.
// It panics with ErrScopeClosed if the scope is not open.
func MakeSlice[T any](s *Scope, n int) []T {
	s.mustLive()
	if n <= 0 {
		return nil
	}
	out := slabFor[T](s.arena).take(n)
	s.arena.stats.Allocs += n
	return out
}
