package repository

import "github.com/m-mizutani/goerr/v2"

var (
	ErrNotFound = goerr.New("not found")
	// ErrAlreadyExists is returned by create operations when the key is taken. The delivery gate depends on it.
	ErrAlreadyExists = goerr.New("already exists")
	ErrInvalidInput  = goerr.New("invalid input")
)
