package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathseek/grid"
	"github.com/katalvlaran/pathseek/search"
)

// walledMaze has the start boxed in on the left; a knight must jump the
// walls to reach the goal in the narrow shaft.
const walledMaze = `*************************
*   *                   *
*   *                   *
* S *   *****************
*   *   *     * *       *
*********     * *       *
*       *     *E*       *
*       *     * *       *
*************************`

func mustParse(t *testing.T, text string, opts ...grid.Option) *grid.Maze {
	t.Helper()
	m, err := grid.Parse(text, opts...)
	require.NoError(t, err)

	return m
}

// requireValidPath checks that path starts at the start, ends at the goal
// and that every hop is a legal successor.
func requireValidPath(t *testing.T, m *grid.Maze, path []grid.Location) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, m.Start(), path[0])
	require.Equal(t, m.Goal(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		require.Contains(t, m.Successors(path[i-1]), path[i], "hop %d", i)
	}
}

func TestWalledMaze_Parse(t *testing.T) {
	m := mustParse(t, walledMaze)

	assert.Equal(t, loc(3, 2), m.Start())
	assert.Equal(t, loc(6, 15), m.Goal())
	assert.Len(t, m.Obstacles(), 103)
	assert.Equal(t, grid.Bounds{Min: loc(0, 0), Max: loc(8, 24)}, m.Bounds())
}

func TestWalledMaze_BFS(t *testing.T) {
	m := mustParse(t, walledMaze)

	node, err := search.BFS(m.Start(), m.IsGoal, m.Successors)
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, 8, node.Depth())
	requireValidPath(t, m, search.Path(node))
}

func TestWalledMaze_DFS(t *testing.T) {
	m := mustParse(t, walledMaze)

	node, err := search.DFS(m.Start(), m.IsGoal, m.Successors)
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.GreaterOrEqual(t, node.Depth(), 8)
	requireValidPath(t, m, search.Path(node))
}

func TestWalledMaze_AStarBeatsBFS(t *testing.T) {
	m := mustParse(t, walledMaze)

	var bfsRec search.Recorder[grid.Location]
	bfsNode, err := search.BFS(m.Start(), m.IsGoal, m.Successors,
		search.WithObserver(bfsRec.Observe))
	require.NoError(t, err)

	for name, h := range map[string]search.HeuristicFunc[grid.Location]{
		"euclidean": m.Euclidean(),
		"knight":    m.KnightEstimate(),
	} {
		t.Run(name, func(t *testing.T) {
			var astarRec search.Recorder[grid.Location]
			node, err := search.AStar(m.Start(), m.IsGoal, m.Successors, h,
				search.WithObserver(astarRec.Observe))
			require.NoError(t, err)
			require.NotNil(t, node)

			assert.Equal(t, float64(bfsNode.Depth()), node.Cost, "both are optimal")
			assert.Equal(t, node.Depth(), int(node.Cost), "unit cost per move")
			assert.Less(t, astarRec.Len(), bfsRec.Len(), "A* expands fewer states")
			requireValidPath(t, m, search.Path(node))
		})
	}
}

func TestOpenBoard_KnightRecursive(t *testing.T) {
	m, err := grid.NewMaze(loc(0, 0), loc(13, 13), nil)
	require.NoError(t, err)

	node, err := search.AStar(m.Start(), m.IsGoal, m.Successors, m.KnightRecursive())
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, 10.0, node.Cost)
	requireValidPath(t, m, search.Path(node))

	fast, err := search.AStar(m.Start(), m.IsGoal, m.Successors, m.KnightEstimate())
	require.NoError(t, err)
	assert.Equal(t, node.Cost, fast.Cost)
}

func TestStartIsGoal(t *testing.T) {
	m, err := grid.NewMaze(loc(4, 4), loc(4, 4), []grid.Location{loc(5, 6)})
	require.NoError(t, err)

	for name, run := range searches(m) {
		node, err := run()
		require.NoError(t, err, name)
		require.NotNil(t, node, name)
		assert.Equal(t, []grid.Location{loc(4, 4)}, search.Path(node), name)
		assert.Zero(t, node.Cost, name)
	}
}

func TestGoalOutsideWindow(t *testing.T) {
	m, err := grid.NewMaze(loc(0, 0), loc(10, 10), nil,
		grid.WithMoves(grid.Conn4), grid.WithBounds(loc(0, 0), loc(3, 3)), grid.WithPadding(0))
	require.NoError(t, err)

	for name, run := range searches(m) {
		node, err := run()
		require.NoError(t, err, name)
		assert.Nil(t, node, name)
	}
}

func TestEnclosedGoal(t *testing.T) {
	m := mustParse(t, "S  ***\n   *E*\n   ***", grid.WithMoves(grid.Conn8))

	for name, run := range searches(m) {
		node, err := run()
		require.NoError(t, err, name)
		assert.Nil(t, node, name)
	}
}

func TestSmallMaze_MoveSets(t *testing.T) {
	const text = `*******
*S  * *
* * * *
* *   *
*   *E*
*******`
	cases := map[grid.MoveSet]int{grid.Conn4: 7, grid.Conn8: 4, grid.Knight: 5}
	for moves, want := range cases {
		t.Run(moves.String(), func(t *testing.T) {
			m := mustParse(t, text, grid.WithMoves(moves))

			node, err := search.BFS(m.Start(), m.IsGoal, m.Successors)
			require.NoError(t, err)
			require.NotNil(t, node)
			assert.Equal(t, want, node.Depth())

			best, err := search.AStar(m.Start(), m.IsGoal, m.Successors, m.Euclidean())
			require.NoError(t, err)
			require.NotNil(t, best)
			assert.Equal(t, float64(want), best.Cost)
			requireValidPath(t, m, search.Path(best))
		})
	}
}

func searches(m *grid.Maze) map[string]func() (*search.Node[grid.Location], error) {
	return map[string]func() (*search.Node[grid.Location], error){
		"dfs": func() (*search.Node[grid.Location], error) {
			return search.DFS(m.Start(), m.IsGoal, m.Successors)
		},
		"bfs": func() (*search.Node[grid.Location], error) {
			return search.BFS(m.Start(), m.IsGoal, m.Successors)
		},
		"astar": func() (*search.Node[grid.Location], error) {
			return search.AStar(m.Start(), m.IsGoal, m.Successors, m.Euclidean())
		},
	}
}
