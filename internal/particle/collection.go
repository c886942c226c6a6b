package particle

import "slices"

// Collection owns the live particles. Order carries no meaning.
type Collection struct {
	items []Particle
}

// Add appends a particle
func (c *Collection) Add(p Particle) {
	c.items = append(c.items, p)
}

// Step advances every particle, then drops the exhausted ones
func (c *Collection) Step() {
	for i := range c.items {
		c.items[i].Advance()
	}
	c.items = slices.DeleteFunc(c.items, func(p Particle) bool {
		return p.Dead()
	})
}

// Len is the number of live particles
func (c *Collection) Len() int {
	return len(c.items)
}

// Items exposes the live particles for drawing; callers must not retain the slice across frames
func (c *Collection) Items() []Particle {
	return c.items
}

// Clear removes every particle
func (c *Collection) Clear() {
	c.items = c.items[:0]
}
