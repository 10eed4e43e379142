package cachesim

// line is one cache line: a tag plus LRU bookkeeping.
type line struct {
	valid bool
	tag   int
	used  uint64 // tick of the most recent touch, drives LRU
}

// Cache is a set-associative cache simulator with LRU replacement.
//
// It is a pure accounting device: no data is stored, only tags. A Cache
// starts cold; Reset returns it to that state. Cache is not safe for
// concurrent use — the kernels it observes are single-threaded by contract.
type Cache struct {
	geom  Geometry
	lines []line // sets × ways, set-major
	tick  uint64 // monotonic access counter for LRU ordering
	stats Stats
}

// New creates a cold Cache with geometry g.
// Stage 1 (Validate): range-check every geometry field.
// Stage 2 (Prepare): allocate sets × ways lines.
// Complexity: O(Sets × Assoc) time and memory.
func New(g Geometry) (*Cache, error) {
	// Validate geometry before allocating
	if err := g.validate(); err != nil {
		return nil, err
	}

	return &Cache{
		geom:  g,
		lines: make([]line, g.Sets()*g.Assoc),
	}, nil
}

// Geometry returns the cache geometry the simulator was built with.
func (c *Cache) Geometry() Geometry {
	return c.geom
}

// Access replays one byte address against the cache and returns whether it
// hit, missed into an empty way, or missed and evicted the LRU resident.
// Loads and stores are accounted identically (write-allocate).
// Complexity: O(Assoc).
func (c *Cache) Access(addr int) Event {
	c.tick++ // advance LRU clock once per access

	// Split the address: offset bits are dropped, set selects the row,
	// the remainder is the tag.
	set := (addr >> c.geom.BlockBits) & (c.geom.Sets() - 1)
	tag := addr >> (c.geom.BlockBits + c.geom.SetBits)
	ways := c.lines[set*c.geom.Assoc : (set+1)*c.geom.Assoc]

	// Pass 1: resident line → hit.
	var w int
	for w = range ways {
		if ways[w].valid && ways[w].tag == tag {
			ways[w].used = c.tick
			c.stats.Hits++

			return Hit
		}
	}

	// Pass 2: miss. Prefer an empty way; otherwise evict the LRU line.
	c.stats.Misses++
	victim := 0
	for w = range ways {
		if !ways[w].valid {
			ways[w] = line{valid: true, tag: tag, used: c.tick}

			return Miss
		}
		if ways[w].used < ways[victim].used {
			victim = w
		}
	}
	ways[victim] = line{valid: true, tag: tag, used: c.tick}
	c.stats.Evictions++

	return MissEviction
}

// Load records a read at addr. Satisfies matrix.Probe.
func (c *Cache) Load(addr int) {
	c.Access(addr)
}

// Store records a write at addr. Satisfies matrix.Probe; the model is
// write-allocate, so stores and loads account identically.
func (c *Cache) Store(addr int) {
	c.Access(addr)
}

// Stats returns the accumulated counters.
func (c *Cache) Stats() Stats {
	return c.stats
}

// Reset returns the cache to the cold state: all lines invalid, all
// counters zero. The geometry is preserved.
func (c *Cache) Reset() {
	for i := range c.lines {
		c.lines[i] = line{}
	}
	c.tick = 0
	c.stats = Stats{}
}
