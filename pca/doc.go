// Package pca provides a principal component analysis of 2-D sample data,
// the standard exploratory decomposition for volumetric time series: rows
// are observations (timepoints), columns are variables (voxels).
//
// Decompose removes the per-variable mean, optionally standardizes each
// variable to unit root-mean-square, forms the observation-by-observation
// covariance matrix and eigen-decomposes it with matrix.Eigen. The result
// carries the component time courses (BasisVectors, columns of an
// orthonormal matrix), the per-component share of explained variance
// (PercentVar), the component spatial maps (Projections) and the numeric
// Rank of the covariance under a relative eigenvalue tolerance.
//
// Components are ordered by decreasing explained variance. The sign of any
// individual component is arbitrary, as it is for every eigen-based PCA;
// only the span and the products BasisVectors*Projections are determined.
package pca
