package codec

// cacheSize is the number of slots in the recency cache. A sample v lives in
// slot v%cacheSize once written, and stays there until another sample with
// the same residue overwrites it.
const cacheSize = 64

// Cache is the 64-slot recency map keyed by sample value modulo 64. It is
// reset to all zero at the start of every plane.
type Cache [cacheSize]uint16

// Store records v in its slot. Called after every sample written by the
// encoder or materialized by the decoder, regardless of which opcode
// produced it.
func (c *Cache) Store(v uint16) {
	c[v%cacheSize] = v
}

// Load returns the sample currently occupying slot s.
func (c *Cache) Load(s uint8) uint16 {
	return c[s]
}

// Has reports whether v is currently cached under its own residue slot,
// i.e. whether the CACHE opcode can reproduce it.
func (c *Cache) Has(v uint16) bool {
	return c[v%cacheSize] == v
}
