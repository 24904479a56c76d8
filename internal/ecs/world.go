package ecs

import "fmt"

// World is the central entity registry and component store.
type World struct {
	nextID   EntityID
	alive    map[EntityID]bool
	storages map[ComponentType]anyStorage
	pending  *Commands
}

// NewWorld creates an empty World.
func NewWorld() *World {
	w := &World{
		nextID:   1,
		alive:    make(map[EntityID]bool),
		storages: make(map[ComponentType]anyStorage),
	}
	w.pending = &Commands{reserve: w.reserveID, check: w.checkAttach}
	return w
}

// Register creates the storage for component type T. Registering the same
// type twice is a no-op; registering two Go types under one ComponentType
// panics.
func Register[T Component](w *World) *Storage[T] {
	var zero T
	t := zero.Type()
	if existing, ok := w.storages[t]; ok {
		s, ok := existing.(*Storage[T])
		if !ok {
			panic(fmt.Sprintf("ecs: component type %d already registered as %T", t, existing))
		}
		return s
	}
	s := newStorage[T]()
	w.storages[t] = s
	return s
}

// Read returns a shared view over the storage for T, registering it if needed.
func Read[T Component](w *World) ReadView[T] {
	return ReadView[T]{s: Register[T](w)}
}

// Write returns the storage for T for mutation, registering it if needed.
func Write[T Component](w *World) *Storage[T] {
	return Register[T](w)
}

// Registered reports whether a storage exists for t.
func (w *World) Registered(t ComponentType) bool {
	_, ok := w.storages[t]
	return ok
}

func (w *World) reserveID() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.reserveID()
	w.alive[id] = true
	return id
}

// DestroyEntity marks the entity dead and removes all its components.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	delete(w.alive, id)
	for _, store := range w.storages {
		store.Remove(id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Attach records c on entity id. Attaching to a dead entity is ignored.
// Panics when c's type has not been registered.
func (w *World) Attach(id EntityID, c Component) {
	if !w.alive[id] {
		return
	}
	w.checkAttach(c)
	w.storage(c.Type()).insertAny(id, c)
}

// Detach removes the component of type t from id.
func (w *World) Detach(id EntityID, t ComponentType) {
	if store, ok := w.storages[t]; ok {
		store.Remove(id)
	}
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store, ok := w.storages[t]
	if !ok {
		return nil
	}
	c, _ := store.getAny(id)
	return c
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	store, ok := w.storages[t]
	return ok && store.Has(id)
}

// Query returns all entities that have every listed component type,
// in creation order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	stores := make([]Joinable, 0, len(types))
	for _, t := range types {
		store, ok := w.storages[t]
		if !ok {
			return nil
		}
		stores = append(stores, store)
	}
	var result []EntityID
	for id := range Join(stores...) {
		result = append(result, id)
	}
	return result
}

// Commands returns the world's deferred structural-change buffer.
// Nothing recorded there is visible until Maintain.
func (w *World) Commands() *Commands {
	return w.pending
}

// Maintain applies every buffered structural change in the order it was
// recorded, then empties the buffer. Attach requests are validated when they
// are recorded, so the replay cannot stop part-way.
func (w *World) Maintain() {
	ops := w.pending.ops
	w.pending.ops = nil
	for _, op := range ops {
		switch op.kind {
		case opCreate:
			w.alive[op.id] = true
		case opDestroy:
			w.DestroyEntity(op.id)
		case opAttach:
			w.Attach(op.id, op.comp)
		case opDetach:
			w.Detach(op.id, op.ctype)
		}
	}
}

// checkAttach panics unless c can be stored: its type is registered under
// the same Go type.
func (w *World) checkAttach(c Component) {
	if !w.storage(c.Type()).accepts(c) {
		panic(fmt.Sprintf("ecs: component %T does not match storage for type %d", c, c.Type()))
	}
}

func (w *World) storage(t ComponentType) anyStorage {
	store, ok := w.storages[t]
	if !ok {
		panic(fmt.Sprintf("ecs: component type %d is not registered", t))
	}
	return store
}
