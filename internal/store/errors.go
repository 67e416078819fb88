package store

import "errors"

var (
	// ErrNoVault is returned when the requested blob slot holds no value,
	// i.e. no vault has been created on this device yet.
	ErrNoVault = errors.New("no vault blob stored")
)
