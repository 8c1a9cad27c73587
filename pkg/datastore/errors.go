package datastore

import "github.com/pkg/errors"

// ErrNotFound is returned by GetEndpoint when no endpoint matches the key.
var ErrNotFound = errors.New("endpoint not found")

// ErrAmbiguous is returned by GetEndpoint when more than one endpoint
// matches the key (spec §7 AmbiguousEndpoint).
var ErrAmbiguous = errors.New("more than one endpoint matches the workload key")

// AddressFamilyUnsupportedError is returned by CreateEndpoint when the
// datastore rejects the allocated CIDR's address family (spec §7).
type AddressFamilyUnsupportedError struct {
	cause error
}

func NewAddressFamilyUnsupportedError(cause error) error {
	return &AddressFamilyUnsupportedError{cause: cause}
}

func (e *AddressFamilyUnsupportedError) Error() string {
	return "datastore does not support this address family: " + e.cause.Error()
}

func (e *AddressFamilyUnsupportedError) Unwrap() error { return e.cause }

// UnavailableError wraps a generic datastore failure (spec §7
// DatastoreUnavailable).
type UnavailableError struct {
	cause error
}

func NewUnavailableError(cause error) error {
	return &UnavailableError{cause: cause}
}

func (e *UnavailableError) Error() string {
	return "datastore unavailable: " + e.cause.Error()
}

func (e *UnavailableError) Unwrap() error { return e.cause }
