// Package orchestrator implements the ADD/DELETE state machine (spec
// §4.7): the ordered sequence of external effects, their compensation on
// ADD failure, and DELETE's best-effort tolerance of partial state.
package orchestrator

import "github.com/pkg/errors"

// Kind identifies which branch of the spec §7 error taxonomy a failure
// belongs to, independent of its message or causal chain.
type Kind string

const (
	KindConfigInvalid            Kind = "ConfigInvalid"
	KindEnvMissing               Kind = "EnvMissing"
	KindIPAMNotFound             Kind = "IPAMNotFound"
	KindIPAMError                Kind = "IPAMError"
	KindAddressFamilyUnsupported Kind = "AddressFamilyUnsupported"
	KindDatastoreUnavailable     Kind = "DatastoreUnavailable"
	KindInvalidNetworkName       Kind = "InvalidNetworkName"
	KindAmbiguousEndpoint        Kind = "AmbiguousEndpoint"
	KindUnexpectedPanic          Kind = "UnexpectedPanic"
)

// Error is the typed-error hierarchy's single concrete type: every fatal
// error the orchestrator returns carries both a taxonomy Kind (for
// exit-code and compensation decisions) and a causal chain (for the log),
// built on github.com/pkg/errors' Wrap/Cause convention.
type Error struct {
	Kind     Kind
	ExitCode int
	cause    error
}

func newError(kind Kind, exitCode int, cause error) *Error {
	return &Error{Kind: kind, ExitCode: exitCode, cause: cause}
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// Cause implements github.com/pkg/errors' Causer, so errors.Cause(err)
// unwinds through an *Error the same way it does any Wrap chain.
func (e *Error) Cause() error { return e.cause }

func configInvalid(cause error) error { return newError(KindConfigInvalid, 1, cause) }
func envMissing(cause error) error    { return newError(KindEnvMissing, 1, cause) }
func ipamNotFound(cause error) error  { return newError(KindIPAMNotFound, 1, cause) }

// ipamError preserves the child's exit code when known, per spec §6/§8:
// "IPAM child's code is propagated when the failure originates there."
func ipamError(cause error, childExitCode int) error {
	code := childExitCode
	if code == 0 {
		code = 1
	}
	return newError(KindIPAMError, code, cause)
}

func addressFamilyUnsupported(cause error) error { return newError(KindAddressFamilyUnsupported, 1, cause) }
func datastoreUnavailable(cause error) error     { return newError(KindDatastoreUnavailable, 1, cause) }
func invalidNetworkName(cause error) error       { return newError(KindInvalidNetworkName, 1, cause) }
func ambiguousEndpoint(cause error) error        { return newError(KindAmbiguousEndpoint, 1, cause) }
func unexpectedPanic(cause error) error          { return newError(KindUnexpectedPanic, 1, cause) }

// The constructors below are exported for cmd/fabric-cni, which builds
// the orchestrator's collaborators before Add/Del ever runs and needs
// the same typed-error taxonomy for failures during that setup phase
// (e.g. an unparsable network configuration, an unreachable datastore
// client). Kind/ExitCode are readable directly off the result; Cause
// unwraps via errors.Unwrap/pkg/errors.Cause like any other *Error.

// NewConfigInvalidError reports a malformed or missing local/network
// configuration (spec §7 ConfigInvalid).
func NewConfigInvalidError(cause error) error { return configInvalid(cause) }

// NewInvalidNetworkNameError reports a network name that fails the
// grammar in spec §3/§4.6, encountered while constructing a policy
// driver (spec §7 InvalidNetworkName).
func NewInvalidNetworkNameError(cause error) error { return invalidNetworkName(cause) }

// NewDatastoreUnavailableError reports a failure reaching the datastore
// backend itself, as opposed to a failed individual operation against it
// (spec §7 DatastoreUnavailable).
func NewDatastoreUnavailableError(cause error) error { return datastoreUnavailable(cause) }

// NewUnexpectedPanicError wraps a recovered panic for the top-level
// handler in cmd/fabric-cni/main.go (spec §7 UnexpectedPanic).
func NewUnexpectedPanicError(cause error) error { return unexpectedPanic(cause) }

// wrapf is a small convenience over github.com/pkg/errors.Wrapf kept
// local so every call site in this package reads the same way.
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
