package parser

import "errors"

// ErrMalformedSheet indicates the worksheet does not follow the expected
// publication layout (too few columns for the configured layout).
var ErrMalformedSheet = errors.New("malformed sheet layout")
