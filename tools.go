//go:build tools

// Package tools pins mockgen so that `go generate ./...` resolves the same
// version on every checkout.
package accelerator_hub

import (
	_ "go.uber.org/mock/mockgen"
)
