package ecs

type opKind uint8

const (
	opCreate opKind = iota
	opDestroy
	opAttach
	opDetach
)

type command struct {
	kind  opKind
	id    EntityID
	comp  Component
	ctype ComponentType
}

// Commands buffers structural changes requested during a tick so that
// storages stay stable while systems iterate them. World.Maintain replays
// the buffer.
type Commands struct {
	reserve func() EntityID
	check   func(Component)
	ops     []command
}

// Create reserves a new entity ID and queues its creation together with the
// given components. The entity is not alive until Maintain. Panics, queuing
// nothing, if any component has no matching storage.
func (c *Commands) Create(comps ...Component) EntityID {
	for _, comp := range comps {
		c.check(comp)
	}
	id := c.reserve()
	c.ops = append(c.ops, command{kind: opCreate, id: id})
	for _, comp := range comps {
		c.Attach(id, comp)
	}
	return id
}

// Destroy queues removal of the entity and all of its components.
func (c *Commands) Destroy(id EntityID) {
	c.ops = append(c.ops, command{kind: opDestroy, id: id})
}

// Attach queues attaching comp to id. Dropped at Maintain if id is dead by then.
// Panics at once when comp's type has no matching storage, so a bad request
// never reaches Maintain.
func (c *Commands) Attach(id EntityID, comp Component) {
	c.check(comp)
	c.ops = append(c.ops, command{kind: opAttach, id: id, comp: comp, ctype: comp.Type()})
}

// Detach queues removal of the component of type t from id.
func (c *Commands) Detach(id EntityID, t ComponentType) {
	c.ops = append(c.ops, command{kind: opDetach, id: id, ctype: t})
}

// Len returns the number of queued operations.
func (c *Commands) Len() int { return len(c.ops) }
