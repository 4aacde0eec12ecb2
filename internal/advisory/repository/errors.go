package repository

import "errors"

// ErrNotFound indicates the requested document does not exist
var ErrNotFound = errors.New("document not found")
