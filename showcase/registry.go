// Package showcase holds small applications that exercise the engine:
// a counter, a root that changes type, and a list that changes length.
package showcase

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-drift/loom/pkg/app"
)

// Demo is a runnable showcase application.
type Demo struct {
	Name        string
	Description string
	// New returns a fresh, erased instance of the application.
	New func() app.Bridge
}

// demos is the registry of all showcase applications, sorted by name.
var demos = []Demo{
	{"counter", "A count and a +1 button", func() app.Bridge { return app.Erase[Increment](&Counter{}) }},
	{"swap", "A root that alternates between a button and a column", func() app.Bridge { return app.Erase[Toggle](&Swap{}) }},
	{"todo", "A list whose length changes with add and remove", func() app.Bridge { return app.Erase[TodoMsg](&Todo{}) }},
}

// Demos returns every registered demo.
func Demos() []Demo {
	return slices.Clone(demos)
}

// Lookup returns the demo called name.
func Lookup(name string) (Demo, error) {
	for _, d := range demos {
		if d.Name == name {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("unknown app %q (have %s)", name, names())
}

func names() string {
	out := make([]string, len(demos))
	for i, d := range demos {
		out[i] = d.Name
	}
	return strings.Join(out, ", ")
}
