// Package service defines the interfaces for external collaborators the
// application depends on.
package service

import (
	"context"

	"fuelflow/internal/domain/intent"
)

// IntentOracle turns a free-text chat message into a structured intent.
// A message with no actionable content comes back as intent.SmallTalk.
type IntentOracle interface {
	Extract(ctx context.Context, message string) (intent.Intent, error)
}
