// Package design provides the coefficient designers for the cut filters.
//
// [ButterworthHP] and [ButterworthLP] expand an Nth-order Butterworth
// response into cascaded second-order sections built from the RBJ
// cookbook [Highpass] and [Lowpass] prototypes. Each section uses the
// pole-pair Q of the Butterworth polynomial, so the product of all section
// responses is maximally flat with -3 dB at the cutoff and a roll-off of
// 6·N dB per octave.
//
// The designers clamp the cutoff with [ClampFrequency] before warping, so
// any input yields stable sections. The Into variants write into a caller
// buffer and do not allocate when it has room for order/2 sections, which
// makes them safe to call from an audio callback.
package design
