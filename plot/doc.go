// Package plot renders the standard active-subspace diagnostics as image
// files: the eigenvalue decay (with optional bootstrap envelopes and known
// true values), the per-truncation subspace distance, eigenvector
// components, and sufficient summary scatter plots of the quantity of
// interest over one or two active variables.
//
// The output format follows the file extension (.png, .pdf, .svg, ...),
// resolved by the plotting backend.
package plot
