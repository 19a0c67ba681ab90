package storage

import "errors"

var ErrNotFound = errors.New("resource not found")
var ErrConflict = errors.New("resource conflict (e.g., invalid reference)")
var ErrDuplicate = errors.New("duplicate resource (unique key violation)")
var ErrEmptyUpdate = errors.New("no fields provided for update")
