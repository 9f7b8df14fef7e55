package objdraw

import "errors"

// ErrFailedPrecondition is returned when the drawer is missing its routine
// registry or its ROM tile resolver.
var ErrFailedPrecondition = errors.New("failed precondition")
