// Package response measures the frequency response of a block processor
// from the outside, treating it as a black box.
//
// [Measure] feeds a unit impulse through the processor and transforms the
// captured impulse response with an FFT. [ToneGainDB] drives a steady sine
// through the processor and compares single-bin levels before and after.
// Both are used to check that the filter engine actually realizes the
// responses its coefficients promise.
package response
