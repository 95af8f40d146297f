package shooter

// Pool is a fixed-capacity array of entities with a logical count.
// Removal swaps the last live entity into the hole, so order is not stable.
type Pool struct {
	items []Entity
	count int
}

// NewPool creates an empty pool holding at most capacity entities.
func NewPool(capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool{items: make([]Entity, capacity)}
}

// Len returns the number of live entities.
func (p *Pool) Len() int {
	return p.count
}

// Cap returns the pool capacity.
func (p *Pool) Cap() int {
	return len(p.items)
}

// Full reports whether another spawn would be dropped.
func (p *Pool) Full() bool {
	return p.count == len(p.items)
}

// Spawn appends e. It returns false, dropping e, when the pool is full.
func (p *Pool) Spawn(e Entity) bool {
	if p.Full() {
		return false
	}
	p.items[p.count] = e
	p.count++
	return true
}

// At returns the live entity at index i for in-place updates.
func (p *Pool) At(i int) *Entity {
	return &p.items[i]
}

// Remove deletes the entity at i by overwriting it with the last live
// entity. Callers iterating by index must revisit i afterwards.
func (p *Pool) Remove(i int) {
	if i < 0 || i >= p.count {
		return
	}
	last := p.count - 1
	p.items[i] = p.items[last]
	p.items[last] = Entity{}
	p.count = last
}

// Items returns the live entities. The slice aliases the pool.
func (p *Pool) Items() []Entity {
	return p.items[:p.count]
}

// Clear removes every entity.
func (p *Pool) Clear() {
	clear(p.items[:p.count])
	p.count = 0
}
