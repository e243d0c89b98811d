package generation

import "errors"

// ErrUninitialized indicates a session accessor was used before Start.
var ErrUninitialized = errors.New("session not initialized")
