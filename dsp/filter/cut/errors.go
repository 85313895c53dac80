package cut

import "errors"

var (
	// ErrInvalidSlope is returned for slopes outside Slope12..Slope48.
	ErrInvalidSlope = errors.New("cut: invalid slope")
	// ErrSectionCount is returned when the number of coefficient sets does
	// not match the stage count the slope requires.
	ErrSectionCount = errors.New("cut: coefficient count does not match slope")
)
