package idgen

// Generator hands out the primary keys for every row written during one
// package build. It is seeded from the build timestamp so generated keys land
// in the same millisecond-epoch space the consuming application uses for its
// own rows, and it only ever counts up, so keys within a build cannot collide.
//
// The generator is shared by plain pointer down the population call chain and
// is not safe for concurrent use; builds are single-threaded.
type Generator struct {
	next int64
}

// New seeds a generator at floor(timestamp*1000). The timestamp is seconds
// since the Unix epoch.
func New(timestamp float64) *Generator {
	return &Generator{next: int64(timestamp * 1000)}
}

// Next returns the current identifier and advances the sequence by one.
func (g *Generator) Next() int64 {
	id := g.next
	g.next++
	return id
}
