package core

import "github.com/go-drift/loom/pkg/graphics"

// ChildVisitor is implemented by widgets that own child pods. Widgets that
// do not implement it are treated as leaves by Walk.
type ChildVisitor interface {
	VisitChildren(fn func(*Pod))
}

// Walk visits p and its descendants depth first, passing each pod's bounds
// in the coordinate space of p's parent. Returning false from fn skips the
// pod's subtree.
func Walk(p *Pod, fn func(p *Pod, bounds graphics.Rect) bool) {
	if p == nil {
		return
	}
	walk(p, graphics.Point{}, fn)
}

func walk(p *Pod, offset graphics.Point, fn func(*Pod, graphics.Rect) bool) {
	bounds := p.Frame().Translate(offset)
	if !fn(p, bounds) {
		return
	}
	v, ok := p.widget.(ChildVisitor)
	if !ok {
		return
	}
	origin := bounds.Origin()
	v.VisitChildren(func(child *Pod) {
		walk(child, origin, fn)
	})
}
