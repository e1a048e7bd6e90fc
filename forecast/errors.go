package forecast

import "errors"

// ErrCellIndexOutOfRange is returned by Aggregation.Cell for an out-of-range index.
var ErrCellIndexOutOfRange = errors.New("forecast: cell index out of range")

// ErrEmptyConfig is returned by Run when RunConfig names zero cells or
// numSim is non-positive.
var ErrEmptyConfig = errors.New("forecast: empty run configuration")
