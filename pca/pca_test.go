package pca_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialref/coordspace/matrix"
	"github.com/spatialref/coordspace/pca"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// outer builds the rank-one matrix u * vᵀ.
func outer(t *testing.T, u, v []float64) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, len(u))
	for i, ui := range u {
		rows[i] = make([]float64, len(v))
		for j, vj := range v {
			rows[i][j] = ui * vj
		}
	}

	return mustDense(t, rows)
}

func TestDecompose_RankOneData(t *testing.T) {
	u := []float64{1, 2, 3, 4}
	v := []float64{1, -1, 2}
	data := outer(t, u, v)

	res, err := pca.Decompose(data, pca.WithoutMeanRemoval(), pca.WithoutStandardize())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Rank)
	require.Len(t, res.PercentVar, 4)
	assert.InDelta(t, 100, res.PercentVar[0], 1e-8)
	assert.InDelta(t, 0, res.PercentVar[1], 1e-8)

	// One component, so the basis is 4x1 and the projection 1x3; their
	// product must rebuild the data whatever the eigenvector sign.
	require.Equal(t, 1, res.BasisVectors.Cols())
	require.Equal(t, 1, res.Projections.Rows())
	recon, err := matrix.Mul(res.BasisVectors, res.Projections)
	require.NoError(t, err)
	for i := range u {
		for j := range v {
			want, _ := data.At(i, j)
			got, _ := recon.At(i, j)
			assert.InDelta(t, want, got, 1e-8, "element (%d,%d)", i, j)
		}
	}

	// The single basis column is unit length.
	norm := 0.0
	for i := 0; i < 4; i++ {
		b, _ := res.BasisVectors.At(i, 0)
		norm += b * b
	}
	assert.InDelta(t, 1, norm, 1e-10)
}

func TestDecompose_MeanRemovalIgnoresOffsets(t *testing.T) {
	u := []float64{1, -1, 2, -2} // zero mean across observations
	v := []float64{3, 1}
	data := outer(t, u, v)
	// A constant per-variable offset must not change the decomposition.
	shifted := data.Clone()
	for i := 0; i < 4; i++ {
		for j := 0; j < 2; j++ {
			w, _ := shifted.At(i, j)
			require.NoError(t, shifted.Set(i, j, w+100*float64(j+1)))
		}
	}

	plain, err := pca.Decompose(data, pca.WithoutStandardize())
	require.NoError(t, err)
	offset, err := pca.Decompose(shifted, pca.WithoutStandardize())
	require.NoError(t, err)

	assert.Equal(t, plain.Rank, offset.Rank)
	for i, want := range plain.PercentVar {
		assert.InDelta(t, want, offset.PercentVar[i], 1e-8)
	}
}

func TestDecompose_StandardizeEqualizesAmplitude(t *testing.T) {
	u := []float64{1, -1, 2, -2}
	// Second variable is the first scaled tenfold; standardizing makes
	// their projections identical.
	data := outer(t, u, []float64{1, 10})

	res, err := pca.Decompose(data)
	require.NoError(t, err)

	require.Equal(t, 1, res.Projections.Rows())
	p0, _ := res.Projections.At(0, 0)
	p1, _ := res.Projections.At(0, 1)
	assert.InDelta(t, p0, p1, 1e-8)
	assert.Greater(t, math.Abs(p0), 0.0)
}

func TestDecompose_FullBasisIsOrthonormal(t *testing.T) {
	data := mustDense(t, [][]float64{
		{2, 0, 1},
		{-1, 3, 0},
		{0.5, -2, 4},
	})

	res, err := pca.Decompose(data,
		pca.WithComponents(3), pca.WithoutMeanRemoval(), pca.WithoutStandardize())
	require.NoError(t, err)

	basisT, err := matrix.Transpose(res.BasisVectors)
	require.NoError(t, err)
	gram, err := matrix.Mul(basisT, res.BasisVectors)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			got, _ := gram.At(i, j)
			assert.InDelta(t, want, got, 1e-8, "gram (%d,%d)", i, j)
		}
	}

	// A full orthonormal basis reconstructs the data exactly.
	recon, err := matrix.Mul(res.BasisVectors, res.Projections)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, _ := data.At(i, j)
			got, _ := recon.At(i, j)
			assert.InDelta(t, want, got, 1e-8)
		}
	}

	sum := 0.0
	for _, pc := range res.PercentVar {
		sum += pc
	}
	assert.InDelta(t, 100, sum, 1e-8)

	// Components arrive in decreasing variance order.
	for i := 1; i < len(res.PercentVar); i++ {
		assert.GreaterOrEqual(t, res.PercentVar[i-1], res.PercentVar[i])
	}
}

func TestDecompose_Errors(t *testing.T) {
	data := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	t.Run("nil data", func(t *testing.T) {
		_, err := pca.Decompose(nil)
		assert.ErrorIs(t, err, pca.ErrEmptyData)
	})

	t.Run("zero components", func(t *testing.T) {
		_, err := pca.Decompose(data, pca.WithComponents(0))
		assert.ErrorIs(t, err, pca.ErrBadComponents)
	})

	t.Run("too many components", func(t *testing.T) {
		_, err := pca.Decompose(data, pca.WithComponents(3))
		assert.ErrorIs(t, err, pca.ErrBadComponents)
	})

	t.Run("negative tolerance", func(t *testing.T) {
		_, err := pca.Decompose(data, pca.WithTolRatio(-0.1))
		assert.ErrorIs(t, err, pca.ErrBadTolRatio)
	})
}

func TestDecompose_TolRatioControlsRank(t *testing.T) {
	// Two orthogonal patterns with very different energy: the weak one
	// falls under a loose tolerance and survives a tight one.
	data := mustDense(t, [][]float64{
		{10, 0},
		{-10, 0},
		{0, 0.1},
		{0, -0.1},
	})

	loose, err := pca.Decompose(data,
		pca.WithoutMeanRemoval(), pca.WithoutStandardize(), pca.WithTolRatio(0.5))
	require.NoError(t, err)
	assert.Equal(t, 1, loose.Rank)

	tight, err := pca.Decompose(data,
		pca.WithoutMeanRemoval(), pca.WithoutStandardize(), pca.WithTolRatio(1e-8))
	require.NoError(t, err)
	assert.Equal(t, 2, tight.Rank)
}
