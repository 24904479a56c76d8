package ecs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnregistered is returned when a system declares a component type
	// that has no storage in the world.
	ErrUnregistered = errors.New("component type not registered")
	// ErrAccessConflict is returned when a system declares the same storage
	// as both read and written.
	ErrAccessConflict = errors.New("storage declared for both read and write")
	// ErrDuplicateSystem is returned when two systems share a name.
	ErrDuplicateSystem = errors.New("duplicate system name")
)

// SystemData declares, up front, every storage a system touches.
type SystemData struct {
	Reads  []ComponentType
	Writes []ComponentType
}

// System is one unit of per-tick logic. R carries shared resources
// (the tile grid, pending input) that live outside the component storages.
type System[R any] interface {
	Name() string
	Data() SystemData
	Run(a *Access, res R)
}

// Access is the storage handle given to a running system. It only hands out
// the storages the system declared.
type Access struct {
	world  *World
	system string
	reads  map[ComponentType]bool
	writes map[ComponentType]bool
}

// ReadStorage returns a shared view of T's storage. Panics if the system did
// not declare T as read or written.
func ReadStorage[T Component](a *Access) ReadView[T] {
	var zero T
	t := zero.Type()
	if !a.reads[t] && !a.writes[t] {
		panic(fmt.Sprintf("ecs: system %q reads undeclared component type %d", a.system, t))
	}
	return Read[T](a.world)
}

// WriteStorage returns a view for editing T's values in place. Panics if the
// system did not declare T as written. Attaching or detaching T goes through
// Commands.
func WriteStorage[T Component](a *Access) WriteView[T] {
	var zero T
	t := zero.Type()
	if !a.writes[t] {
		panic(fmt.Sprintf("ecs: system %q writes undeclared component type %d", a.system, t))
	}
	return WriteView[T]{s: Register[T](a.world)}
}

// Commands returns the world's deferred structural-change buffer.
func (a *Access) Commands() *Commands {
	return a.world.Commands()
}

type stage[R any] struct {
	sys    System[R]
	access *Access
}

// Dispatcher runs a fixed sequence of systems against one world.
type Dispatcher[R any] struct {
	world  *World
	stages []stage[R]
}

// NewDispatcher validates every system's declared data and returns a
// dispatcher that runs them in the given order.
func NewDispatcher[R any](w *World, systems ...System[R]) (*Dispatcher[R], error) {
	d := &Dispatcher[R]{world: w}
	seen := make(map[string]bool, len(systems))
	for _, sys := range systems {
		name := sys.Name()
		if seen[name] {
			return nil, fmt.Errorf("system %q: %w", name, ErrDuplicateSystem)
		}
		seen[name] = true

		data := sys.Data()
		a := &Access{
			world:  w,
			system: name,
			reads:  make(map[ComponentType]bool, len(data.Reads)),
			writes: make(map[ComponentType]bool, len(data.Writes)),
		}
		for _, t := range data.Writes {
			if !w.Registered(t) {
				return nil, fmt.Errorf("system %q writes type %d: %w", name, t, ErrUnregistered)
			}
			a.writes[t] = true
		}
		for _, t := range data.Reads {
			if !w.Registered(t) {
				return nil, fmt.Errorf("system %q reads type %d: %w", name, t, ErrUnregistered)
			}
			if a.writes[t] {
				return nil, fmt.Errorf("system %q type %d: %w", name, t, ErrAccessConflict)
			}
			a.reads[t] = true
		}
		d.stages = append(d.stages, stage[R]{sys: sys, access: a})
	}
	return d, nil
}

// Dispatch runs every system once, in order, each to completion.
func (d *Dispatcher[R]) Dispatch(res R) {
	for _, st := range d.stages {
		st.sys.Run(st.access, res)
	}
}

// Systems returns the system names in run order.
func (d *Dispatcher[R]) Systems() []string {
	names := make([]string, len(d.stages))
	for i, st := range d.stages {
		names[i] = st.sys.Name()
	}
	return names
}
