package model

import "errors"

const (
	ErrCodeMissingSender = "CONV001"
	ErrCodeStateStore    = "CONV002"
)

var (
	ErrStateNotFound = errors.New("conversation state not found")
	ErrMissingSender = errors.New("missing sender")
)
