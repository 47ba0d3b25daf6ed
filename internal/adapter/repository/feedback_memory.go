package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/marinazub/meeting-insights/internal/domain/entities"
	"github.com/marinazub/meeting-insights/internal/domain/repositories"
	usecaseErrors "github.com/marinazub/meeting-insights/internal/usecase/errors"
)

// feedbackMemoryRepository implements FeedbackRepository with an
// explicitly owned in-memory collection. Durability is the caller's
// concern; the store's job is consistent, torn-read-free iteration
// under concurrent submissions, which it gets from copy-on-read
// snapshots behind a RWMutex.
type feedbackMemoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*entities.FeedbackRecord
	order   []uuid.UUID
}

// NewFeedbackMemoryRepository creates an empty in-memory feedback store
func NewFeedbackMemoryRepository() repositories.FeedbackRepository {
	return &feedbackMemoryRepository{
		records: make(map[uuid.UUID]*entities.FeedbackRecord),
	}
}

// Create stores a new survey record
func (r *feedbackMemoryRepository) Create(ctx context.Context, record *entities.FeedbackRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneRecord(record)
	r.records[record.ID] = &stored
	r.order = append(r.order, record.ID)
	return nil
}

// FindByID retrieves a copy of a survey record by its ID
func (r *feedbackMemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.FeedbackRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.records[id]
	if !ok {
		return nil, usecaseErrors.ErrSurveyNotFound
	}
	dup := cloneRecord(stored)
	return &dup, nil
}

// Update replaces an existing survey record
func (r *feedbackMemoryRepository) Update(ctx context.Context, record *entities.FeedbackRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ID]; !ok {
		return usecaseErrors.ErrSurveyNotFound
	}
	stored := cloneRecord(record)
	r.records[record.ID] = &stored
	return nil
}

// Snapshot returns a point-in-time copy of every stored record, in
// insertion order
func (r *feedbackMemoryRepository) Snapshot(ctx context.Context) ([]entities.FeedbackRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.FeedbackRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneRecord(r.records[id]))
	}
	return out, nil
}

// FindBySeries returns copies of all records tied to a recurring
// meeting series, in insertion order
func (r *feedbackMemoryRepository) FindBySeries(ctx context.Context, recurringMeetingID string) ([]entities.FeedbackRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entities.FeedbackRecord
	for _, id := range r.order {
		record := r.records[id]
		if record.RecurringMeetingID != nil && *record.RecurringMeetingID == recurringMeetingID {
			out = append(out, cloneRecord(record))
		}
	}
	return out, nil
}

// cloneRecord deep-copies a record so callers never share backing
// arrays or pointers with the store.
func cloneRecord(record *entities.FeedbackRecord) entities.FeedbackRecord {
	dup := *record
	if record.RecurringMeetingID != nil {
		id := *record.RecurringMeetingID
		dup.RecurringMeetingID = &id
	}
	if record.Responses != nil {
		dup.Responses = make([]entities.SurveyResponse, len(record.Responses))
		for i, resp := range record.Responses {
			cloned := resp
			if resp.Participation != nil {
				p := *resp.Participation
				cloned.Participation = &p
			}
			if resp.MeetingLength != nil {
				l := *resp.MeetingLength
				cloned.MeetingLength = &l
			}
			dup.Responses[i] = cloned
		}
	}
	return dup
}
