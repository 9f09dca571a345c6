package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardOf builds a board by resolving and inserting moves in order.
func boardOf(moves ...Move) *Board {
	b := &Board{}
	for _, m := range moves {
		b.Insert(b.ResolveOrientation(m.Tile, m.Side))
	}
	return b
}

func requireEnds(t *testing.T, b *Board, wantLeft, wantRight int) {
	t.Helper()
	left, right, ok := b.Ends()
	require.True(t, ok, "Board should have ends")
	require.Equal(t, wantLeft, left, "left end")
	require.Equal(t, wantRight, right, "right end")
}

func TestPlayableEnds(t *testing.T) {
	tests := []struct {
		name  string
		board *Board
		tile  Tile
		want  Ends
	}{
		{name: "empty board accepts anything", board: &Board{}, tile: NewTile(2, 4), want: Ends{Left: true, Right: true}},
		{name: "matches left only", board: boardOf(Move{NewTile(1, 4), Left}), tile: NewTile(1, 6), want: Ends{Left: true}},
		{name: "matches right only", board: boardOf(Move{NewTile(1, 4), Left}), tile: NewTile(4, 6), want: Ends{Right: true}},
		{name: "matches both ends of a single tile", board: boardOf(Move{NewTile(1, 4), Left}), tile: NewTile(1, 4), want: Ends{Left: true, Right: true}},
		{name: "double equal to both ends", board: boardOf(Move{NewTile(3, 3), Left}), tile: NewTile(3, 3), want: Ends{Left: true, Right: true}},
		{name: "no match", board: boardOf(Move{NewTile(1, 4), Left}), tile: NewTile(2, 5), want: Ends{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.board.PlayableEnds(tt.tile)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want.Left || tt.want.Right, got.Any())
		})
	}
}

func TestResolveOrientation(t *testing.T) {
	t.Run("empty board keeps the tile as drawn", func(t *testing.T) {
		b := &Board{}
		p := b.ResolveOrientation(NewTile(3, 5), Left)

		require.Equal(t, Placement{Tile: NewTile(3, 5), Side: Left, Left: 3, Right: 5}, p)
	})

	t.Run("left end matched by face A flips outward to B", func(t *testing.T) {
		b := boardOf(Move{NewTile(2, 5), Left})
		p := b.ResolveOrientation(NewTile(2, 6), Left)

		require.Equal(t, 6, p.Left)
		require.Equal(t, 2, p.Right)
		require.Equal(t, -1, p.Position)
	})

	t.Run("left end matched by face B keeps A outward", func(t *testing.T) {
		b := boardOf(Move{NewTile(4, 5), Left})
		p := b.ResolveOrientation(NewTile(1, 4), Left)

		require.Equal(t, 1, p.Left)
		require.Equal(t, 4, p.Right)
	})

	t.Run("right end matched by face A", func(t *testing.T) {
		b := boardOf(Move{NewTile(2, 5), Left})
		p := b.ResolveOrientation(NewTile(5, 6), Right)

		require.Equal(t, 5, p.Left)
		require.Equal(t, 6, p.Right)
		require.Equal(t, 1, p.Position)
	})

	t.Run("right end matched by face B", func(t *testing.T) {
		b := boardOf(Move{NewTile(2, 5), Left})
		p := b.ResolveOrientation(NewTile(0, 5), Right)

		require.Equal(t, 5, p.Left)
		require.Equal(t, 0, p.Right)
	})

	t.Run("double gets a defined orientation", func(t *testing.T) {
		b := boardOf(Move{NewTile(2, 5), Left})
		p := b.ResolveOrientation(NewTile(5, 5), Right)

		require.Equal(t, 5, p.Left)
		require.Equal(t, 5, p.Right)
		require.True(t, p.Vertical())
	})

	t.Run("panics when no face matches", func(t *testing.T) {
		b := boardOf(Move{NewTile(2, 5), Left})

		require.PanicsWithError(t, "illegal placement of 1-3 on left: no face matches left end 2", func() {
			b.ResolveOrientation(NewTile(1, 3), Left)
		})
		require.Panics(t, func() {
			b.ResolveOrientation(NewTile(1, 3), Right)
		})
	})

	t.Run("inward face equals the matched end", func(t *testing.T) {
		for _, start := range NewSet() {
			for _, tile := range NewSet() {
				if tile == start {
					continue
				}
				b := boardOf(Move{start, Left})
				ends := b.PlayableEnds(tile)
				left, right, _ := b.Ends()
				if ends.Left {
					require.Equal(t, left, b.ResolveOrientation(tile, Left).Right)
				}
				if ends.Right {
					require.Equal(t, right, b.ResolveOrientation(tile, Right).Left)
				}
			}
		}
	})
}

func TestBoardInsert(t *testing.T) {
	t.Run("scenario: open with 3-5 then double five on the right", func(t *testing.T) {
		b := &Board{}
		b.Insert(b.ResolveOrientation(NewTile(3, 5), Left))
		requireEnds(t, b, 3, 5)

		ends := b.PlayableEnds(NewTile(5, 5))
		require.Equal(t, Ends{Right: true}, ends, "Double five should only fit the right end")

		b.Insert(b.ResolveOrientation(NewTile(5, 5), Right))
		requireEnds(t, b, 3, 5)
		require.Equal(t, []Tile{NewTile(3, 5), NewTile(5, 5)}, b.Tiles())
	})

	t.Run("explicit right choice leaves the left end alone", func(t *testing.T) {
		b := boardOf(Move{NewTile(2, 4), Left})
		tile := NewTile(2, 4)
		require.Equal(t, Ends{Left: true, Right: true}, b.PlayableEnds(tile))

		b.Insert(b.ResolveOrientation(tile, Right))
		requireEnds(t, b, 2, 2)
		require.Equal(t, 2, b.Placements[0].Left, "Left end should not change")
	})

	t.Run("left placements prepend and count positions down", func(t *testing.T) {
		b := boardOf(
			Move{NewTile(3, 4), Left},
			Move{NewTile(1, 3), Left},
			Move{NewTile(4, 6), Right},
			Move{NewTile(0, 1), Left},
		)

		require.Equal(t, []Tile{NewTile(0, 1), NewTile(1, 3), NewTile(3, 4), NewTile(4, 6)}, b.Tiles())
		requireEnds(t, b, 0, 6)
		positions := []int{}
		for _, p := range b.Placements {
			positions = append(positions, p.Position)
		}
		require.Equal(t, []int{-2, -1, 0, 1}, positions)
		require.Equal(t, "[0|1][1|3][3|4][4|6]", b.String())
	})

	t.Run("copy does not share placements", func(t *testing.T) {
		b := boardOf(Move{NewTile(3, 4), Left})
		c := b.Copy()
		c.Insert(c.ResolveOrientation(NewTile(4, 4), Right))

		require.Equal(t, 1, b.Len())
		require.Equal(t, 2, c.Len())
	})
}
