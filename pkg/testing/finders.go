package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/graphics"
)

// Match is a pod found in the tree with its bounds in surface coordinates.
type Match struct {
	Pod    *core.Pod
	Bounds graphics.Rect
}

// Widget returns the matched pod's widget.
func (m Match) Widget() core.Widget {
	return m.Pod.Widget()
}

// Finder locates pods in the tree.
type Finder interface {
	// Evaluate returns all matching pods under root (depth-first pre-order).
	Evaluate(root *core.Pod) []Match
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	matches []Match
	finder  Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() Match {
	if len(r.matches) == 0 {
		panic(fmt.Sprintf("Finder found no pods: %s", r.description()))
	}
	return r.matches[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) Match {
	if index < 0 || index >= len(r.matches) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.matches), r.description()))
	}
	return r.matches[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []Match {
	return r.matches
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.matches)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.matches) > 0
}

// Widget returns the widget of the first match. Panics if no matches.
func (r FinderResult) Widget() core.Widget {
	return r.First().Widget()
}

type predicateFinder struct {
	fn   func(*core.Pod) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *core.Pod) []Match {
	var out []Match
	core.Walk(root, func(p *core.Pod, bounds graphics.Rect) bool {
		if f.fn(p) {
			out = append(out, Match{Pod: p, Bounds: bounds})
		}
		return true
	})
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate finds pods matching an arbitrary predicate.
func ByPredicate(fn func(*core.Pod) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate"}
}

// ByType finds pods whose widget is a W.
func ByType[W core.Widget]() Finder {
	name := reflect.TypeFor[W]().String()
	return &predicateFinder{
		fn: func(p *core.Pod) bool {
			_, ok := p.Widget().(W)
			return ok
		},
		desc: "ByType[" + name + "]",
	}
}

// ByViewType finds pods last reconciled against a view of type V. Pointer
// and value views share a type.
func ByViewType[V core.View]() Finder {
	t := reflect.TypeFor[V]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return &predicateFinder{
		fn:   func(p *core.Pod) bool { return p.ViewType() == t },
		desc: "ByViewType[" + t.String() + "]",
	}
}

type texter interface{ Content() string }

// ByText finds text widgets whose content equals text exactly.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(p *core.Pod) bool {
			w, ok := p.Widget().(texter)
			return ok && w.Content() == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining finds text widgets whose content contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(p *core.Pod) bool {
			w, ok := p.Widget().(texter)
			return ok && strings.Contains(w.Content(), substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}
