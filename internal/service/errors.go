package service

import (
	"errors"
	"fmt"
)

// Operation names used in TransportError.Op.
const (
	OpList   = "list"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// TransportError is the single failure kind of the task client.
// It covers network failures, non-2xx responses and undecodable bodies.
type TransportError struct {
	Op     string
	Status int // non-2xx HTTP status, 0 otherwise
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s request failed: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err is or wraps a *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
