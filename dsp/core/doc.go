// Package core holds the stream configuration shared by the filter engine
// and the small numeric helpers used across packages.
package core
