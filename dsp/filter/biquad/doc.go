// Package biquad provides the second-order IIR section used as the stage
// of every cut filter.
//
// A [Section] implements Direct Form II Transposed processing for one
// second-order section defined by [Coefficients]. Block processing is
// dispatched once per process to the fastest kernel the CPU supports
// (generic, SSE2 or AVX2 builds of the same recurrence), so output is
// identical across kernels up to floating-point reassociation.
//
// Coefficient design lives in dsp/filter/design; stage bypass and slope
// handling live in dsp/filter/cut.
package biquad
