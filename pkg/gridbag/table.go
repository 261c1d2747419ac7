package gridbag

// Table maps elements to their constraints and holds the container's
// default constraint. Constraints are values, so stored records never alias
// the caller's.
type Table struct {
	entries map[Element]Constraint
	def     Constraint
}

// NewTable creates an empty table whose default is [DefaultConstraint].
func NewTable() *Table {
	return &Table{entries: make(map[Element]Constraint)}
}

// Set stores c for e, replacing any previous constraint. It reports false,
// storing nothing, when e is nil or not comparable.
func (t *Table) Set(e Element, c Constraint) bool {
	if !keyable(e) {
		return false
	}
	t.entries[e] = c
	return true
}

// Get returns the constraint stored for e, or the current default.
func (t *Table) Get(e Element) Constraint {
	if c, ok := t.Lookup(e); ok {
		return c
	}
	return t.def
}

// Lookup returns the constraint stored for e and whether one exists.
func (t *Table) Lookup(e Element) (Constraint, bool) {
	if !keyable(e) {
		return Constraint{}, false
	}
	c, ok := t.entries[e]
	return c, ok
}

// Remove deletes the constraint stored for e. Later lookups fall back to the default.
func (t *Table) Remove(e Element) {
	if keyable(e) {
		delete(t.entries, e)
	}
}

// Default returns the fallback constraint.
func (t *Table) Default() Constraint {
	return t.def
}

// SetDefault replaces the fallback constraint seen by elements without their own.
func (t *Table) SetDefault(c Constraint) {
	t.def = c
}

// Len returns the number of stored constraints.
func (t *Table) Len() int {
	return len(t.entries)
}
