// Package app connects application state to the widget host. An
// Application declares its message type; Erase hides that type behind a
// Bridge so the Runner can drive update cycles with opaque messages.
package app

import (
	"fmt"
	"reflect"

	"github.com/go-drift/loom/pkg/arena"
	"github.com/go-drift/loom/pkg/core"
	"github.com/go-drift/loom/pkg/errors"
)

// Application is user state with a declared message type M.
//
// M may be an interface, which lets an application accept a closed set of
// message kinds:
//
//	type Msg interface{ isMsg() }
//	type Increment struct{}
//	func (Increment) isMsg() {}
type Application[M any] interface {
	// Update applies msg to the application state.
	Update(msg M)
	// View describes the current UI. Transient view values should be
	// allocated from s.
	View(s *arena.Scope) core.AnyView
}

// Bridge is an Application with its message type erased.
type Bridge interface {
	// Update delivers an opaque message. A message of the wrong type is
	// dropped, reported, and returned as a *errors.MessageError.
	Update(msg any) error
	View(s *arena.Scope) core.AnyView
	// MessageType is the declared message type.
	MessageType() reflect.Type
}

// Erase wraps a typed application as a Bridge.
func Erase[M any](a Application[M]) Bridge {
	return &bridge[M]{app: a, msgType: reflect.TypeFor[M]()}
}

type bridge[M any] struct {
	app     Application[M]
	msgType reflect.Type
}

func (b *bridge[M]) Update(msg any) error {
	m, ok := msg.(M)
	if !ok {
		mismatch := &errors.MessageError{
			Want:  b.msgType.String(),
			Got:   fmt.Sprintf("%T", msg),
			Value: msg,
		}
		errors.Report(&errors.LoomError{
			Op:   "app.Update",
			Kind: errors.KindMessage,
			Err:  mismatch,
		})
		return mismatch
	}
	b.app.Update(m)
	return nil
}

func (b *bridge[M]) View(s *arena.Scope) core.AnyView {
	return b.app.View(s)
}

func (b *bridge[M]) MessageType() reflect.Type {
	return b.msgType
}
