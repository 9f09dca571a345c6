package game

import (
	"fmt"
	"strconv"
	"strings"

	"domino/meta"

	"golang.org/x/exp/rand"
)

// Tile is an unordered pair of pip values. NewTile keeps A <= B so that two
// tiles with the same faces compare equal.
type Tile struct {
	A int
	B int
}

func NewTile(a, b int) Tile {
	if a > b {
		a, b = b, a
	}
	return Tile{A: a, B: b}
}

func (t Tile) IsDouble() bool {
	return t.A == t.B
}

// Has reports whether either face shows v.
func (t Tile) Has(v int) bool {
	return t.A == v || t.B == v
}

// ID renders the tile as "A-B", the form accepted by ParseTile.
func (t Tile) ID() string {
	return fmt.Sprintf("%d-%d", t.A, t.B)
}

func (t Tile) String() string {
	return t.ID()
}

// ParseTile reads an "A-B" id. Face order does not matter.
func ParseTile(id string) (Tile, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(id), "-")
	if !ok {
		return Tile{}, fmt.Errorf("invalid tile id %q: missing separator", id)
	}
	a, err := strconv.Atoi(left)
	if err != nil {
		return Tile{}, fmt.Errorf("invalid tile id %q: %w", id, err)
	}
	b, err := strconv.Atoi(right)
	if err != nil {
		return Tile{}, fmt.Errorf("invalid tile id %q: %w", id, err)
	}
	if a < 0 || a > meta.MAX_PIP || b < 0 || b > meta.MAX_PIP {
		return Tile{}, fmt.Errorf("invalid tile id %q: pips must be within 0..%d", id, meta.MAX_PIP)
	}
	return NewTile(a, b), nil
}

// Rand is the randomness the shuffle needs. *rand.Rand from x/exp satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source, so a seed fully determines a deal.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSet returns the double-six set in canonical order: (0,0), (0,1) ... (6,6).
func NewSet() []Tile {
	tiles := make([]Tile, 0, meta.SET_SIZE)
	for i := 0; i <= meta.MAX_PIP; i++ {
		for j := i; j <= meta.MAX_PIP; j++ {
			tiles = append(tiles, Tile{A: i, B: j})
		}
	}
	return tiles
}

// Shuffle returns a uniformly permuted copy of tiles (Fisher-Yates, last index down).
func Shuffle(tiles []Tile, rng Rand) []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
