// Package cut implements the low-cut / high-cut filter chain: a fixed row
// of [MaxStages] biquad stages of which a leading prefix is active.
//
// The user-facing steepness is a [Slope] (12, 24, 36 or 48 dB/oct). A
// slope of s needs a Butterworth design of order 2(s+1), which is
// s+1 second-order sections; [Chain.ApplySlope] loads those sections into
// stages 0..s and bypasses the rest. Stages keep their delay-line state
// across coefficient changes and bypass toggles, so a running stream is
// never restarted by a parameter change.
//
// A zero Chain has every stage bypassed and passes audio through unchanged.
// Nothing in this package allocates after construction.
package cut
