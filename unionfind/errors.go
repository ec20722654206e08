package unionfind

import "errors"

// ErrOutOfRange indicates a point id outside [0, N). Find and Union do not
// check their arguments and never return it.
var ErrOutOfRange = errors.New("unionfind: point id out of range")

// ErrEmpty indicates a UnionFind was constructed with N <= 0.
var ErrEmpty = errors.New("unionfind: size must be positive")
