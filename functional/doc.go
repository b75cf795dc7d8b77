// Package functional wraps a scalar quantity of interest f: R^m → R and
// supplies its gradient, either from a user-provided analytic derivative or
// by a central finite-difference stencil.
//
// The estimation engine treats a functional as a potentially expensive,
// synchronous collaborator: it only ever calls Evaluate and Gradient and
// assumes both are free of side effects from its point of view. Call
// counters are maintained so expensive studies can account for solver
// invocations.
//
// Gradient resolution order:
//  1. analytic derivative, if set via SetGradient / WithGradient
//  2. central finite differences with step h (default 1e-6):
//     g_j = (f(x + h·e_j) - f(x - h·e_j)) / (2h)
package functional
