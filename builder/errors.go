package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrConstructFailed indicates Build received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
