package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/marinazub/meeting-insights/internal/domain/entities"
)

// FeedbackRepository defines the interface for survey record access.
// Implementations must support consistent iteration: Snapshot returns
// copies so a concurrent append never produces a torn read inside an
// aggregation pass.
type FeedbackRepository interface {
	// Create stores a new survey record
	Create(ctx context.Context, record *entities.FeedbackRecord) error

	// FindByID retrieves a survey record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.FeedbackRecord, error)

	// Update replaces an existing survey record
	Update(ctx context.Context, record *entities.FeedbackRecord) error

	// Snapshot returns a point-in-time copy of every stored record
	Snapshot(ctx context.Context) ([]entities.FeedbackRecord, error)

	// FindBySeries returns copies of all records for a recurring
	// meeting series, in insertion order
	FindBySeries(ctx context.Context, recurringMeetingID string) ([]entities.FeedbackRecord, error)
}
