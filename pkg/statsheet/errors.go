package statsheet

import "errors"

// ErrNoInput indicates no input files were given.
var ErrNoInput = errors.New("no input files")
