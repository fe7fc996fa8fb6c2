package rows

// NameAllocator assigns sequential ids to deduplicated name strings. It is
// the "small allocator struct passed to row encoders" spec section 9
// describes for resolving the cyclic track <-> artist/album/genre/label
// relationships by id alone, with no in-memory back-pointers.
type NameAllocator struct {
	next int
	ids  map[string]uint32
	// Order preserves first-seen insertion order so table builders can
	// iterate rows in a stable, reproducible sequence.
	Order []string
}

// NewNameAllocator builds an allocator whose first assigned id is startID.
// Table row ids in this format are 1-based, so startID is normally 1.
func NewNameAllocator(startID uint32) *NameAllocator {
	return &NameAllocator{next: int(startID), ids: make(map[string]uint32)}
}

// IDFor returns the id for name, allocating a new one on first sight. An
// empty name never gets a row: IDFor("") always returns 0, matching the
// "track has no genre" / "no label" case.
func (a *NameAllocator) IDFor(name string) uint32 {
	if name == "" {
		return 0
	}
	if id, ok := a.ids[name]; ok {
		return id
	}
	id := uint32(a.next)
	a.next++
	a.ids[name] = id
	a.Order = append(a.Order, name)
	return id
}
