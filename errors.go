package vec

import "github.com/pkg/errors"

// ErrOutOfRange is returned when an index or position falls outside the
// vector's live range. Checked accessors wrap it with the offending index;
// match it with errors.Is.
var ErrOutOfRange = errors.New("vec: index out of range")
