package errors

import "errors"

var ErrMultipleBlocks = errors.New("multiple metadata blocks found")
