package ports

import (
	"context"

	"vehicle-checklist-service/internal/core/domain"
)

// Notifier sends the completion email. Fields is the flat template
// mapping rendered by the core; no retry is attempted on failure.
type Notifier interface {
	Send(ctx context.Context, fields map[string]string) error
}

// ImageHost uploads one base64-encoded photo and returns its public
// URL. Each photo is attempted independently by the caller.
type ImageHost interface {
	Upload(ctx context.Context, base64Image string) (string, error)
}

// ReportCache holds the last successfully fetched checklist collection.
// Get returns (nil, nil) on a miss; corrupt cached data is also treated
// as a miss, never as an error on the read path.
type ReportCache interface {
	Put(ctx context.Context, records []*domain.Checklist) error
	Get(ctx context.Context) ([]*domain.Checklist, error)
}
