package ports

import (
	"context"

	"leetstats/internal/domain/model"
)

// Notifier sends digests to downstream channels (e.g. Discord).
type Notifier interface {
	Send(ctx context.Context, notification model.Notification) error
}
