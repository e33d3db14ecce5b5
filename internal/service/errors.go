package service

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoFile       = errors.New("no file selected")
)
