package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// ErrAuthentication is terminal for a connection attempt.
	ErrAuthentication = fmt.Errorf("authentication error")
	ErrMissingToken   = fmt.Errorf("%w: token is missing", ErrAuthentication)
	ErrInvalidToken   = fmt.Errorf("%w: invalid or expired token", ErrAuthentication)
	ErrUnknownRole    = fmt.Errorf("%w: unknown role", ErrAuthentication)
	ErrUserNotFound   = fmt.Errorf("%w: user not found", ErrAuthentication)
	ErrUserDisabled   = fmt.Errorf("%w: user disabled", ErrAuthentication)

	// ErrMalformedEvent drops the offending event, the connection stays open.
	ErrMalformedEvent = fmt.Errorf("malformed event")
	ErrUnknownKind    = fmt.Errorf("%w: unknown kind", ErrMalformedEvent)
	ErrInvalidPayload = fmt.Errorf("%w: invalid payload", ErrMalformedEvent)

	// ErrUnreachableTarget is soft: never surfaced to the sender.
	ErrUnreachableTarget = fmt.Errorf("unreachable target")

	ErrReservedGroup     = fmt.Errorf("reserved group")
	ErrUnknownConnection = fmt.Errorf("unknown connection")
	ErrConnectionClosed  = fmt.Errorf("connection closed")
	ErrSinkFull          = fmt.Errorf("sink buffer full")
	ErrRateLimited       = fmt.Errorf("rate limited")
	ErrUserAlreadyExists = fmt.Errorf("user already exists")
)
