package ecs

import "slices"

// Joinable is any storage view that can take part in a Join.
type Joinable interface {
	Has(id EntityID) bool
	Len() int
	entities() []EntityID
}

// anyStorage is the type-erased face of a Storage used by the World for
// lifecycle work (destroy, deferred attach) without knowing T.
type anyStorage interface {
	Joinable
	componentType() ComponentType
	getAny(id EntityID) (Component, bool)
	insertAny(id EntityID, c Component) bool
	accepts(c Component) bool
	Remove(id EntityID)
}

// Storage holds every value of one component type, keyed by entity.
// Entities are kept sorted by ID, which is creation order.
type Storage[T Component] struct {
	ctype ComponentType
	ids   []EntityID
	vals  []T
}

func newStorage[T Component]() *Storage[T] {
	var zero T
	return &Storage[T]{ctype: zero.Type()}
}

func (s *Storage[T]) componentType() ComponentType { return s.ctype }

func (s *Storage[T]) entities() []EntityID { return s.ids }

func (s *Storage[T]) find(id EntityID) (int, bool) {
	return slices.BinarySearch(s.ids, id)
}

// Len returns the number of entities holding this component.
func (s *Storage[T]) Len() int { return len(s.ids) }

// Has reports whether id holds this component.
func (s *Storage[T]) Has(id EntityID) bool {
	_, ok := s.find(id)
	return ok
}

// Get returns a copy of the component for id.
func (s *Storage[T]) Get(id EntityID) (T, bool) {
	i, ok := s.find(id)
	if !ok {
		var zero T
		return zero, false
	}
	return s.vals[i], true
}

// Mut returns a pointer to the stored component for in-place edits.
// The pointer is valid until the next structural change to this storage.
func (s *Storage[T]) Mut(id EntityID) (*T, bool) {
	i, ok := s.find(id)
	if !ok {
		return nil, false
	}
	return &s.vals[i], true
}

// Insert sets the component for id, replacing any previous value.
func (s *Storage[T]) Insert(id EntityID, c T) {
	i, ok := s.find(id)
	if ok {
		s.vals[i] = c
		return
	}
	// Fast path: new entities always carry the highest ID so far.
	if i == len(s.ids) {
		s.ids = append(s.ids, id)
		s.vals = append(s.vals, c)
		return
	}
	s.ids = slices.Insert(s.ids, i, id)
	s.vals = slices.Insert(s.vals, i, c)
}

// Remove detaches the component from id. Missing entries are ignored.
func (s *Storage[T]) Remove(id EntityID) {
	i, ok := s.find(id)
	if !ok {
		return
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	s.vals = slices.Delete(s.vals, i, i+1)
}

func (s *Storage[T]) getAny(id EntityID) (Component, bool) {
	c, ok := s.Get(id)
	if !ok {
		return nil, false
	}
	return c, true
}

func (s *Storage[T]) insertAny(id EntityID, c Component) bool {
	v, ok := c.(T)
	if !ok {
		return false
	}
	s.Insert(id, v)
	return true
}

// ReadView is a shared, read-only view over one Storage.
type ReadView[T Component] struct {
	s *Storage[T]
}

// Get returns a copy of the component for id.
func (v ReadView[T]) Get(id EntityID) (T, bool) { return v.s.Get(id) }

// Has reports whether id holds this component.
func (v ReadView[T]) Has(id EntityID) bool { return v.s.Has(id) }

// Len returns the number of entities holding this component.
func (v ReadView[T]) Len() int { return v.s.Len() }

func (v ReadView[T]) entities() []EntityID { return v.s.ids }

func (s *Storage[T]) accepts(c Component) bool {
	_, ok := c.(T)
	return ok
}

// WriteView is the in-tick mutable view of one Storage. Values can be edited
// in place, but entities cannot be added or removed: structural changes during
// a tick go through Commands so Join never sees its storages reshaped.
type WriteView[T Component] struct {
	s *Storage[T]
}

// Get returns a copy of the component for id.
func (v WriteView[T]) Get(id EntityID) (T, bool) { return v.s.Get(id) }

// Mut returns a pointer to the stored component for in-place edits.
func (v WriteView[T]) Mut(id EntityID) (*T, bool) { return v.s.Mut(id) }

// Has reports whether id holds this component.
func (v WriteView[T]) Has(id EntityID) bool { return v.s.Has(id) }

// Len returns the number of entities holding this component.
func (v WriteView[T]) Len() int { return v.s.Len() }

func (v WriteView[T]) entities() []EntityID { return v.s.ids }
