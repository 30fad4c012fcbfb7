package workspace_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/katalvlaran/matcalc/workspace"
	"github.com/stretchr/testify/require"
)

func mustFloat(t *testing.T, r, c int, vals ...float64) *matrix.Float {
	t.Helper()
	m, err := matrix.NewDense(r, c, vals)
	require.NoError(t, err)

	return m
}

func TestDefineLookup(t *testing.T) {
	tbl := workspace.New[float64]()
	a := mustFloat(t, 1, 2, 1, 2)

	require.NoError(t, tbl.Define("A", a))
	got, err := tbl.Lookup("A")
	require.NoError(t, err)
	require.True(t, got.Equal(a))

	_, err = tbl.Lookup("a") // names are case-sensitive
	require.ErrorIs(t, err, workspace.ErrNotFound)
}

func TestDefineOwnsValue(t *testing.T) {
	tbl := workspace.New[float64]()
	a := mustFloat(t, 1, 1, 5)
	require.NoError(t, tbl.Define("A", a))

	require.NoError(t, a.Set(0, 0, 6)) // mutate the caller's copy
	got, err := tbl.Lookup("A")
	require.NoError(t, err)
	v, _ := got.At(0, 0)
	require.Equal(t, 5.0, v)

	require.NoError(t, got.Set(0, 0, 7)) // mutate the handed-out copy
	again, _ := tbl.Lookup("A")
	v, _ = again.At(0, 0)
	require.Equal(t, 5.0, v)
}

func TestRedefineLastWins(t *testing.T) {
	tbl := workspace.New[int64]()
	first, _ := matrix.NewDense(1, 1, []int64{1})
	second, _ := matrix.NewDense(2, 1, []int64{2, 3})

	require.NoError(t, tbl.Define("X", first))
	require.NoError(t, tbl.Define("X", second))
	require.Equal(t, 1, tbl.Len())

	got, err := tbl.Lookup("X")
	require.NoError(t, err)
	require.True(t, got.Equal(second))
}

func TestDefineErrors(t *testing.T) {
	tbl := workspace.New[float64]()
	require.ErrorIs(t, tbl.Define("", mustFloat(t, 1, 1, 1)), workspace.ErrEmptyName)
	require.ErrorIs(t, tbl.Define("A", nil), workspace.ErrNilMatrix)
}

func TestDeleteAndEntries(t *testing.T) {
	tbl := workspace.New[float64]()
	require.NoError(t, tbl.Define("b", mustFloat(t, 2, 3, 1, 2, 3, 4, 5, 6)))
	require.NoError(t, tbl.Define("a", mustFloat(t, 1, 1, 1)))

	require.Equal(t, []workspace.Entry{
		{Name: "a", Rows: 1, Cols: 1},
		{Name: "b", Rows: 2, Cols: 3},
	}, tbl.Entries())

	require.NoError(t, tbl.Delete("a"))
	require.False(t, tbl.Has("a"))
	require.ErrorIs(t, tbl.Delete("a"), workspace.ErrNotFound)
}

func TestConcurrentAccess(t *testing.T) {
	tbl := workspace.New[float64]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		m := mustFloat(t, 1, 1, float64(i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tbl.Define("shared", m)
			_, _ = tbl.Lookup("shared")
			_ = tbl.Entries()
		}()
	}
	wg.Wait()
	require.True(t, tbl.Has("shared"))
}
