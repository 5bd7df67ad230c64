package dsu

import "github.com/pkg/errors"

// ErrInvalidIndex indicates that an element outside [0, n) was passed to
// Find, Union or Connected.
var ErrInvalidIndex = errors.New("dsu: index out of range")
