package rnc

import "errors"

var (
	ErrRecordNotFound = errors.New("inspection record not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInvalidPhase   = errors.New("invalid evidence phase")
	ErrNotClosed      = errors.New("record is not closed")
)
