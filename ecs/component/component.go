package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
	ErrInvalidKind    = errors.New("ecs: invalid component kind")
)

// ID identifies a component type process-wide.
type ID uint32

var nextID atomic.Uint32

// Kind is the typed identity of a component. Kinds are allocated once per
// component type at package init and compared by id.
type Kind[T any] struct {
	id ID
}

func NewKind[T any]() Kind[T] {
	return Kind[T]{id: ID(nextID.Add(1))}
}

func (k Kind[T]) ID() ID {
	return k.id
}

func (k Kind[T]) Valid() bool {
	return k.id != 0
}

// AnyKind is the type-erased view of a Kind used by multi-kind queries.
type AnyKind interface {
	ID() ID
	Valid() bool
}

// Handle pairs a component type with its kind; component declarations expose
// one package-level handle per component.
type Handle[T any] struct {
	kind Kind[T]
}

func New[T any]() Handle[T] {
	return Handle[T]{kind: NewKind[T]()}
}

func (h Handle[T]) Kind() Kind[T] {
	return h.kind
}
