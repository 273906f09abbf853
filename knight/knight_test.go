package knight_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathseek/grid"
	"github.com/katalvlaran/pathseek/knight"
	"github.com/katalvlaran/pathseek/search"
)

func loc(r, c int) grid.Location { return grid.Location{Row: r, Col: c} }

const walled = `*************************
*   *                   *
*   *                   *
* S *   *****************
*   *   *     * *       *
*********     * *       *
*       *     *E*       *
*       *     * *       *
*************************`

// corridor confines the knight to two rows, where it can never change
// column parity.
const corridor = `**********
**********
**S     **
**     E**
**********
**********`

// ring blocks every square a knight could reach the goal from.
const ring = `S



     * *
    *   *
      E
    *   *
     * *`

func movesFromText(t *testing.T, text string) (int, bool) {
	t.Helper()
	start, goal, obstacles, err := knight.FromText(text)
	require.NoError(t, err)
	n, ok, err := knight.Moves(start, goal, obstacles)
	require.NoError(t, err)

	return n, ok
}

func TestMoves_OpenBoard(t *testing.T) {
	cases := []struct {
		dest grid.Location
		want int
	}{
		{loc(0, 0), 0},
		{loc(1, 2), 1},
		{loc(1, 0), 3},
		{loc(2, 2), 4},
		{loc(13, 13), 10},
		{loc(-7, 3), 4},
	}
	for _, tc := range cases {
		n, ok, err := knight.Moves(loc(0, 0), tc.dest, nil)
		require.NoError(t, err, "%v", tc.dest)
		assert.True(t, ok, "%v", tc.dest)
		assert.Equal(t, tc.want, n, "%v", tc.dest)
		assert.Equal(t, grid.KnightDistance(loc(0, 0), tc.dest), n, "%v", tc.dest)
	}
}

func TestMoves_Mazes(t *testing.T) {
	n, ok := movesFromText(t, walled)
	assert.True(t, ok)
	assert.Equal(t, 8, n)

	_, ok = movesFromText(t, corridor)
	assert.False(t, ok, "corridor")

	_, ok = movesFromText(t, ring)
	assert.False(t, ok, "ring")
}

func TestMoves_OpeningTheRing(t *testing.T) {
	start, goal, obstacles, err := knight.FromText(ring)
	require.NoError(t, err)
	require.Len(t, obstacles, 8)

	var open []grid.Location
	for _, o := range obstacles {
		if o != loc(4, 5) {
			open = append(open, o)
		}
	}
	n, ok, err := knight.Moves(start, goal, open)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, n)
}

func TestRoute(t *testing.T) {
	path, err := knight.Route(loc(0, 0), loc(13, 13), []grid.Location{loc(2, 1), loc(1, 2)})
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, loc(0, 0), path[0])
	assert.Equal(t, loc(13, 13), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, grid.KnightDistance(path[i-1], path[i]), "hop %d is one jump", i)
	}

	path, err = knight.Route(loc(2, 2), loc(3, 4), nil)
	require.NoError(t, err)
	assert.Equal(t, []grid.Location{loc(2, 2), loc(3, 4)}, path)
}

func TestMoves_SearchOptions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := knight.Moves(loc(0, 0), loc(13, 13), nil, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)

	_, _, err = knight.Moves(loc(0, 0), loc(13, 13), nil, search.WithMaxExpansions(2))
	assert.ErrorIs(t, err, search.ErrExpansionLimit)
}

func TestFromText(t *testing.T) {
	start, goal, obstacles, err := knight.FromText("S*\n*E")
	require.NoError(t, err)
	assert.Equal(t, loc(0, 0), start)
	assert.Equal(t, loc(1, 1), goal)
	assert.Equal(t, []grid.Location{loc(0, 1), loc(1, 0)}, obstacles)

	_, _, _, err = knight.FromText("S  ")
	assert.ErrorIs(t, err, grid.ErrMissingGoal)
	assert.ErrorIs(t, err, grid.ErrConfiguration)
}
