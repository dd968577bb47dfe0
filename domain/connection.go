// Package domain contains core concepts of the hub.
// This file defines Connection identifiers.
package domain

import (
	"log/slog"

	"github.com/google/uuid"
)

type ConnectionID uuid.UUID

// NoConnection excludes nobody when passed as the except argument of a lookup.
var NoConnection ConnectionID

func NewConnectionID() ConnectionID {
	return ConnectionID(uuid.New())
}

func (c ConnectionID) String() string {
	return uuid.UUID(c).String()
}

func (c ConnectionID) LogValue() slog.Value {
	return slog.StringValue(c.String())
}
