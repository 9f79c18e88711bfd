package pca

import (
	"fmt"
	"math"
	"sort"

	"github.com/spatialref/coordspace/matrix"
)

// DefaultTolRatio is the relative eigenvalue threshold below which a
// component does not count towards the numeric rank.
const DefaultTolRatio = 0.01

// Option configures Decompose.
type Option func(*options)

type options struct {
	components    int
	hasComponents bool
	keepMean      bool
	noStandardize bool
	tolRatio      float64
}

// WithComponents limits the returned basis and projections to the top k
// components. Defaults to the numeric rank of the covariance.
func WithComponents(k int) Option {
	return func(o *options) {
		o.components = k
		o.hasComponents = true
	}
}

// WithoutMeanRemoval skips subtracting the per-variable mean, for data
// already centered upstream.
func WithoutMeanRemoval() Option {
	return func(o *options) { o.keepMean = true }
}

// WithoutStandardize skips scaling each variable to unit root-mean-square,
// so variables with larger amplitude weigh proportionally more.
func WithoutStandardize() Option {
	return func(o *options) { o.noStandardize = true }
}

// WithTolRatio sets the relative eigenvalue threshold for the rank count.
func WithTolRatio(ratio float64) Option {
	return func(o *options) { o.tolRatio = ratio }
}

// Result is the outcome of a Decompose call.
type Result struct {
	// BasisVectors holds one component time course per column, rows x k,
	// orthonormal columns ordered by decreasing explained variance.
	BasisVectors *matrix.Dense
	// Projections holds one component spatial map per row, k x cols: the
	// basis transposed and applied to the processed data.
	Projections *matrix.Dense
	// PercentVar is the percentage of total variance per component, for
	// every component (length rows), not only the k returned ones.
	PercentVar []float64
	// Rank counts the eigenvalues above tolRatio times the largest one.
	Rank int
}

// Decompose runs a principal component analysis of data, rows as
// observations and columns as variables.
//
// The processed data R (mean-removed, optionally standardized) yields the
// symmetric covariance C = R*Rᵀ, whose eigen-decomposition supplies the
// components. Fails with ErrEmptyData on a nil or empty matrix,
// ErrBadComponents when WithComponents falls outside [1, rows],
// ErrBadTolRatio on a negative tolerance, and propagates matrix.Eigen
// failures.
//
// Complexity: O(rows^2 * cols) for the covariance plus the Eigen cost.
func Decompose(data *matrix.Dense, opts ...Option) (*Result, error) {
	if data == nil || data.Rows() == 0 || data.Cols() == 0 {
		return nil, fmt.Errorf("Decompose: %w", ErrEmptyData)
	}
	o := options{tolRatio: DefaultTolRatio}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tolRatio < 0 {
		return nil, fmt.Errorf("Decompose: ratio %g: %w", o.tolRatio, ErrBadTolRatio)
	}
	n := data.Rows()
	if o.hasComponents && (o.components < 1 || o.components > n) {
		return nil, fmt.Errorf("Decompose: %d components for %d observations: %w",
			o.components, n, ErrBadComponents)
	}

	resid := preprocess(data, o)

	// Observation-by-observation covariance, symmetric by construction.
	residT, err := matrix.Transpose(resid)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}
	cov, err := matrix.Mul(resid, residT)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}

	eigs, vecs, err := matrix.Eigen(cov, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}

	// Order components by decreasing eigenvalue.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return eigs[order[a]] > eigs[order[b]] })

	top := eigs[order[0]]
	total := 0.0
	for _, e := range eigs {
		total += e
	}
	pcnt := make([]float64, n)
	rank := 0
	for i, idx := range order {
		if total > 0 {
			pcnt[i] = eigs[idx] * 100 / total
		}
		if eigs[idx] > o.tolRatio*top {
			rank++
		}
	}

	k := o.components
	if !o.hasComponents {
		// Degenerate all-zero data has rank 0; still return one component.
		k = rank
		if k == 0 {
			k = 1
		}
	}

	basis, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}
	for c := 0; c < k; c++ {
		for r := 0; r < n; r++ {
			v, _ := vecs.At(r, order[c])
			_ = basis.Set(r, c, v)
		}
	}

	basisT, err := matrix.Transpose(basis)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}
	proj, err := matrix.Mul(basisT, resid)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}

	return &Result{
		BasisVectors: basis,
		Projections:  proj,
		PercentVar:   pcnt,
		Rank:         rank,
	}, nil
}

// preprocess applies mean removal and standardization per variable,
// returning a fresh matrix; data is never mutated.
func preprocess(data *matrix.Dense, o options) *matrix.Dense {
	n, p := data.Rows(), data.Cols()
	out, _ := matrix.NewDense(n, p)
	for j := 0; j < p; j++ {
		mean := 0.0
		if !o.keepMean {
			for i := 0; i < n; i++ {
				v, _ := data.At(i, j)
				mean += v
			}
			mean /= float64(n)
		}
		scale := 1.0
		if !o.noStandardize {
			ss := 0.0
			for i := 0; i < n; i++ {
				v, _ := data.At(i, j)
				d := v - mean
				ss += d * d
			}
			if rms := math.Sqrt(ss / float64(n)); rms > 0 {
				scale = 1 / rms
			}
		}
		for i := 0; i < n; i++ {
			v, _ := data.At(i, j)
			_ = out.Set(i, j, (v-mean)*scale)
		}
	}

	return out
}
