package board

import "strconv"

// Fingerprint identifies a disc arrangement together with a side. Boards with
// equal fingerprints are interchangeable for caching.
type Fingerprint struct {
	Occupied uint64
	Color    uint64
	Player   Side
}

func (f Fingerprint) String() string {
	tag := " black"
	if f.Player == SideWhite {
		tag = " white"
	}
	return strconv.FormatUint(f.Occupied, 10) + "|" + strconv.FormatUint(f.Color, 10) + tag
}

// MoveCache maps fingerprints to their legal moves. Entries are never evicted;
// a cache lives as long as the game session that owns it and should be Reset
// between games. MoveCache is not safe for concurrent use.
type MoveCache struct {
	moves map[Fingerprint][]Move

	// stats
	hits   int
	misses int
}

func NewMoveCache() *MoveCache {
	return &MoveCache{
		moves: make(map[Fingerprint][]Move),
	}
}

func (c *MoveCache) Get(f Fingerprint) ([]Move, bool) {
	mvs, ok := c.moves[f]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	return mvs, true
}

// Set stores mvs unless f is already cached; the first computation wins.
func (c *MoveCache) Set(f Fingerprint, mvs []Move) {
	if _, ok := c.moves[f]; ok {
		return
	}
	c.moves[f] = mvs
}

func (c *MoveCache) Len() int {
	return len(c.moves)
}

func (c *MoveCache) Reset() {
	c.moves = make(map[Fingerprint][]Move)
	c.ResetStats()
}

func (c *MoveCache) ResetStats() {
	c.hits = 0
	c.misses = 0
}

func (c *MoveCache) Stats() (int, int) {
	return c.hits, c.misses
}
