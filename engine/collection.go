package engine

// Collection records which items have been found this session
// An item is collected at most once and never uncollected.
type Collection struct {
	found map[string]struct{}
	order []string
}

// NewCollection creates an empty collection
func NewCollection() *Collection {
	return &Collection{found: make(map[string]struct{})}
}

// Collect marks id as found and reports whether this was the first time
func (c *Collection) Collect(id string) bool {
	if _, ok := c.found[id]; ok {
		return false
	}
	c.found[id] = struct{}{}
	c.order = append(c.order, id)
	return true
}

// Has reports whether id has been found
func (c *Collection) Has(id string) bool {
	_, ok := c.found[id]
	return ok
}

// Len returns the number of found items
func (c *Collection) Len() int {
	return len(c.order)
}

// IDs returns found item ids in collection order
func (c *Collection) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
