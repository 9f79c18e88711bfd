package coordmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialref/coordspace/coordmap"
	"github.com/spatialref/coordspace/coords"
	"github.com/spatialref/coordspace/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// assertMatrix compares every element of m against want.
func assertMatrix(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	require.Equal(t, len(want[0]), m.Cols(), "col count")
	for i := range want {
		for j := range want[i] {
			got, err := m.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i][j], got, 1e-12, "element (%d,%d)", i, j)
		}
	}
}

// scaling builds a one-axis Affine mapping in -> out by the given factor.
func scaling(t *testing.T, in, out string, factor float64) *coordmap.Affine {
	t.Helper()
	a, err := coordmap.FromMatrix([]string{in}, []string{out},
		mustDense(t, [][]float64{{factor, 0}, {0, 1}}))
	require.NoError(t, err)

	return a
}

func TestNewAffine_DiagonalScale(t *testing.T) {
	in := coords.MustSystem(coords.Axes("ijk"), "voxels", coords.Float64)
	out := coords.MustSystem(coords.Axes("xyz"), "world", coords.Float64)
	hom := mustDense(t, [][]float64{
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 3, 0},
		{0, 0, 0, 1},
	})

	a, err := coordmap.NewAffine(hom, in, out)
	require.NoError(t, err)

	got, err := a.EvalPoint([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, got, 1e-12)

	inv, ok := a.Inverse()
	require.True(t, ok)
	back, err := inv.EvalPoint([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, back, 1e-12)
}

func TestNewAffine_Validation(t *testing.T) {
	in := coords.MustSystem(coords.Axes("ij"), "voxels", coords.Float64)
	out := coords.MustSystem(coords.Axes("xy"), "world", coords.Float64)

	t.Run("nil matrix", func(t *testing.T) {
		_, err := coordmap.NewAffine(nil, in, out)
		assert.ErrorIs(t, err, coordmap.ErrNilFunction)
	})

	t.Run("wrong shape", func(t *testing.T) {
		hom := mustDense(t, [][]float64{{1, 0}, {0, 1}})
		_, err := coordmap.NewAffine(hom, in, out)
		assert.ErrorIs(t, err, coordmap.ErrAffineShape)
	})

	t.Run("bad homogeneous row", func(t *testing.T) {
		hom := mustDense(t, [][]float64{
			{1, 0, 0},
			{0, 1, 0},
			{0, 5, 1},
		})
		_, err := coordmap.NewAffine(hom, in, out)
		assert.ErrorIs(t, err, coordmap.ErrNotHomogeneous)
	})
}

func TestNewAffine_PromotesPrecision(t *testing.T) {
	in := coords.MustSystem(coords.Axes("ij"), "voxels", coords.Int32)
	out := coords.MustSystem(coords.Axes("xy"), "world", coords.Float32)

	a, err := coordmap.NewAffine(mustDense(t, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}), in, out)
	require.NoError(t, err)

	// The float64 matrix carrier lifts both systems to at least Float64;
	// axis names and labels survive the rebuild.
	assert.Equal(t, coords.Float64, a.Input().Precision())
	assert.Equal(t, coords.Float64, a.Output().Precision())
	assert.Equal(t, "voxels", a.Input().Label())
	assert.True(t, a.Input().Same(in))
}

func TestFromMatrix_AxisCountMismatch(t *testing.T) {
	hom := mustDense(t, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})

	_, err := coordmap.FromMatrix([]string{"i", "j", "k"}, []string{"x", "y"}, hom)
	assert.ErrorIs(t, err, coordmap.ErrAxisCount)
}

func TestFromLinear_TranslationApplied(t *testing.T) {
	linear := mustDense(t, [][]float64{{2, 0}, {0, 3}})
	a, err := coordmap.FromLinear(coords.Axes("ij"), coords.Axes("xy"), linear, []float64{10, -1})
	require.NoError(t, err)

	got, err := a.EvalPoint([]float64{1, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{12, 2}, got, 1e-12)

	assertMatrix(t, [][]float64{{2, 0}, {0, 3}}, a.Linear())
	assert.InDeltaSlice(t, []float64{10, -1}, a.Translation(), 1e-12)
}

func TestFromStartStep(t *testing.T) {
	a, err := coordmap.FromStartStep(coords.Axes("ijk"), coords.Axes("xyz"),
		[]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)

	got, err := a.EvalPoint([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 7, 9}, got, 1e-12)

	_, err = coordmap.FromStartStep(coords.Axes("ij"), coords.Axes("xyz"),
		[]float64{0, 0}, []float64{1, 1})
	assert.ErrorIs(t, err, coordmap.ErrAxisCount)
}

func TestIdentityTransform(t *testing.T) {
	id, err := coordmap.IdentityTransform(coords.Axes("ijk"))
	require.NoError(t, err)

	got, err := id.EvalPoint([]float64{7, -2, 0.5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{7, -2, 0.5}, got, 1e-12)
	assert.Equal(t, []string{"i", "j", "k"}, id.Input().Names())
	assert.Equal(t, []string{"i", "j", "k"}, id.Output().Names())
}

func TestAffine_InverseAbsentWhenSingular(t *testing.T) {
	a, err := coordmap.FromMatrix([]string{"i"}, []string{"x"},
		mustDense(t, [][]float64{{0, 0}, {0, 1}}))
	require.NoError(t, err)

	_, ok := a.Inverse()
	assert.False(t, ok)
}

func TestAffine_MatrixIsIsolated(t *testing.T) {
	hom := mustDense(t, [][]float64{{2, 0}, {0, 1}})
	a, err := coordmap.FromMatrix([]string{"i"}, []string{"x"}, hom)
	require.NoError(t, err)

	// Mutating the constructor argument or the accessor's clone must not
	// change the transform.
	require.NoError(t, hom.Set(0, 0, 99))
	clone := a.Matrix()
	require.NoError(t, clone.Set(0, 0, -5))

	got, err := a.EvalPoint([]float64{3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{6}, got, 1e-12)
}

func TestAffine_EvalRejectsWrongWidth(t *testing.T) {
	a, err := coordmap.IdentityTransform(coords.Axes("ij"))
	require.NoError(t, err)

	_, err = a.Eval([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, coords.ErrDimensionMismatch)
}

func TestAffine_EvalCoercesOutputPrecision(t *testing.T) {
	in := coords.MustSystem(coords.Axes("i"), "steps", coords.Int32)
	out := coords.MustSystem(coords.Axes("x"), "mm", coords.Int32)
	a, err := coordmap.NewAffine(mustDense(t, [][]float64{{2, 0}, {0, 1}}), in, out)
	require.NoError(t, err)

	// NewAffine promoted both systems to Float64, so fractional results
	// pass through untouched.
	got, err := a.EvalPoint([]float64{1.25})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.5}, got, 1e-12)
}
