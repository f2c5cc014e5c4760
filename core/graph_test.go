package core_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scmforge/core"
	"github.com/katalvlaran/scmforge/dfs"
)

// newGraph returns a graph holding n fresh variables a, b, c, ...
func newGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		id, err := g.AddVariable()
		require.NoError(t, err)
		require.Equal(t, core.SlotID(i), id)
	}

	return g
}

// assertMirrored checks that causes and effects describe the same edge set.
func assertMirrored(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, id := range g.Variables() {
		v, err := g.Variable(id)
		require.NoError(t, err)
		for _, to := range v.Effects() {
			w, err := g.Variable(to)
			require.NoError(t, err, "dangling effect %s → %s", id, to)
			assert.Contains(t, w.Causes(), id)
		}
		for _, from := range v.Causes() {
			w, err := g.Variable(from)
			require.NoError(t, err, "dangling cause %s → %s", from, id)
			assert.Contains(t, w.Effects(), id)
		}
	}
}

func TestSlotIDs(t *testing.T) {
	assert.Equal(t, "a", core.SlotID(0))
	assert.Equal(t, "z", core.SlotID(core.Capacity-1))
	i, ok := core.SlotIndex("c")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	for _, bad := range []string{"", "A", "ab", "{", "1"} {
		_, ok = core.SlotIndex(bad)
		assert.False(t, ok, bad)
	}
}

func TestAddVariable_SmallestFreeSlot(t *testing.T) {
	g := newGraph(t, 3)
	require.NoError(t, g.RemoveVariable("b"))
	id, err := g.AddVariable()
	require.NoError(t, err)
	assert.Equal(t, "b", id)

	v, err := g.Variable("b")
	require.NoError(t, err)
	assert.Equal(t, "var_b", v.Name)
	assert.Empty(t, v.Causes())
	assert.Empty(t, v.Effects())
	assert.Equal(t, 1, v.Noise.Len())
}

func TestAddVariable_Capacity(t *testing.T) {
	g := newGraph(t, core.Capacity)
	assert.Equal(t, core.Capacity, g.Len())
	_, err := g.AddVariable()
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
	assert.Equal(t, core.Capacity, g.Len())
}

func TestAddVariable_DefaultNameCollision(t *testing.T) {
	g := newGraph(t, 2)
	require.NoError(t, g.RemoveVariable("b"))
	require.NoError(t, g.Rename("a", "var_b"))
	_, err := g.AddVariable()
	require.NoError(t, err)
	v, _ := g.Variable("b")
	assert.Equal(t, "var_b_2", v.Name)
}

func TestInsertVariable(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.InsertVariable("d"))
	assert.Equal(t, []string{"d"}, g.Variables())
	assert.ErrorIs(t, g.InsertVariable("d"), core.ErrSlotTaken)
	assert.ErrorIs(t, g.InsertVariable("D"), core.ErrVariableNotFound)

	id, err := g.AddVariable()
	require.NoError(t, err)
	assert.Equal(t, "a", id)
}

func TestRename(t *testing.T) {
	g := newGraph(t, 2)
	require.NoError(t, g.Rename("a", "  height "))
	v, _ := g.Variable("a")
	assert.Equal(t, "height", v.Name)
	id, ok := g.LookupName("height")
	assert.True(t, ok)
	assert.Equal(t, "a", id)

	assert.ErrorIs(t, g.Rename("a", "h"), core.ErrInvalidName)
	assert.ErrorIs(t, g.Rename("a", "1st"), core.ErrInvalidName)
	assert.ErrorIs(t, g.Rename("a", "   "), core.ErrInvalidName)
	assert.ErrorIs(t, g.Rename("b", "height"), core.ErrDuplicateName)
	assert.ErrorIs(t, g.Rename("q", "other"), core.ErrVariableNotFound)

	// renaming to itself is allowed; non-ASCII letters are letters
	assert.NoError(t, g.Rename("a", "height"))
	assert.NoError(t, g.Rename("b", "äpfel"))
}

func TestAddEdge_Rules(t *testing.T) {
	g := newGraph(t, 3)
	require.NoError(t, g.AddEdge("a", "b"))
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))

	assert.False(t, g.CanAddEdge("a", "a"))
	assert.ErrorIs(t, g.AddEdge("a", "a"), core.ErrWouldCreateCycle)

	assert.False(t, g.CanAddEdge("b", "a"))
	assert.ErrorIs(t, g.AddEdge("b", "a"), core.ErrWouldCreateCycle)

	assert.False(t, g.CanAddEdge("a", "b"))
	assert.ErrorIs(t, g.AddEdge("a", "b"), core.ErrEdgeExists)

	assert.False(t, g.CanAddEdge("a", "x"))
	assert.ErrorIs(t, g.AddEdge("a", "x"), core.ErrVariableNotFound)

	require.NoError(t, g.AddEdge("b", "c"))
	err := g.AddEdge("c", "a")
	require.ErrorIs(t, err, core.ErrWouldCreateCycle)
	assert.True(t, strings.Contains(err.Error(), "→"), err.Error())

	assert.True(t, g.CanAddEdge("a", "c"))
	assert.Equal(t, []core.Edge{{From: "a", To: "b"}, {From: "b", To: "c"}}, g.Edges())
}

func TestRemoveEdge(t *testing.T) {
	g := newGraph(t, 2)
	assert.ErrorIs(t, g.RemoveEdge("a", "b"), core.ErrEdgeNotFound)
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.RemoveEdge("a", "b"))
	assert.False(t, g.HasEdge("a", "b"))
	a, _ := g.Variable("a")
	b, _ := g.Variable("b")
	assert.Empty(t, a.Effects())
	assert.Empty(t, b.Causes())

	// the reverse direction becomes legal again
	assert.True(t, g.CanAddEdge("b", "a"))
}

func TestRemoveVariable_DetachesEdges(t *testing.T) {
	g := newGraph(t, 4)
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("d", "b"))
	require.NoError(t, g.RemoveVariable("b"))

	assert.Equal(t, []string{"a", "c", "d"}, g.Variables())
	assert.Empty(t, g.Edges())
	assertMirrored(t, g)
	assert.ErrorIs(t, g.RemoveVariable("b"), core.ErrVariableNotFound)
}

func TestCausesAreCopies(t *testing.T) {
	g := newGraph(t, 2)
	require.NoError(t, g.AddEdge("a", "b"))
	b, _ := g.Variable("b")
	causes := b.Causes()
	causes[0] = "z"
	assert.Equal(t, []string{"a"}, b.Causes())
}

func TestTopologicalOrder(t *testing.T) {
	g := newGraph(t, 4)
	require.NoError(t, g.AddEdge("c", "a"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("d", "b"))
	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	require.Len(t, order, 4)
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "%s → %s", e.From, e.To)
	}
}

// TestRandomMutations_StayAcyclic drives a long random sequence of edge and
// variable operations and checks the structural invariants after each step.
func TestRandomMutations_StayAcyclic(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	g := newGraph(t, 8)
	for step := 0; step < 2000; step++ {
		ids := g.Variables()
		from := ids[rng.IntN(len(ids))]
		to := ids[rng.IntN(len(ids))]
		switch op := rng.IntN(10); {
		case op < 6:
			can := g.CanAddEdge(from, to)
			err := g.AddEdge(from, to)
			assert.Equal(t, can, err == nil, "step %d: %s → %s", step, from, to)
		case op < 9:
			if g.HasEdge(from, to) {
				require.NoError(t, g.RemoveEdge(from, to))
			}
		default:
			if g.Len() > 1 {
				require.NoError(t, g.RemoveVariable(from))
			}
			if g.Len() < 8 {
				_, err := g.AddVariable()
				require.NoError(t, err)
			}
		}
		require.False(t, dfs.HasCycle(g), "step %d", step)
		assertMirrored(t, g)
	}
}
