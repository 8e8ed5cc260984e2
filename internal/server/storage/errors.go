package storage

import "errors"

// ErrRowNotFound строки с таким id аккаунта нет
var ErrRowNotFound = errors.New("sync row not found")
