package feedback

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marinazub/meeting-insights/internal/domain/entities"
	"github.com/marinazub/meeting-insights/internal/domain/repositories"
	usecaseErrors "github.com/marinazub/meeting-insights/internal/usecase/errors"
)

// Service owns the survey record lifecycle around the pure aggregation
// core: scheduling records, appending responses, and the terminal
// processed transition. Aggregation itself always runs over a snapshot
// taken from the repository, so concurrent submissions never tear an
// in-flight reduction.
type Service struct {
	repo   repositories.FeedbackRepository
	logger *zap.Logger
}

// NewService creates a new feedback service
func NewService(repo repositories.FeedbackRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ScheduleSurveyInput represents input for scheduling a survey
type ScheduleSurveyInput struct {
	RecurringMeetingID *string
	MeetingTitle       string
}

// ScheduleSurvey creates a survey record in the scheduled state
func (s *Service) ScheduleSurvey(ctx context.Context, input ScheduleSurveyInput) (*entities.FeedbackRecord, error) {
	record := entities.NewFeedbackRecord(input.RecurringMeetingID, input.MeetingTitle)
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create survey record: %w", err)
	}

	if s.logger != nil {
		series := ""
		if record.RecurringMeetingID != nil {
			series = *record.RecurringMeetingID
		}
		s.logger.Info("survey scheduled",
			zap.String("survey_id", record.ID.String()),
			zap.String("series_id", series),
		)
	}
	return record, nil
}

// SubmitResponse appends a survey submission to a record. The first
// submission moves a scheduled record to completed; later submissions
// simply accumulate, since every resubmission counts in aggregation.
func (s *Service) SubmitResponse(ctx context.Context, surveyID uuid.UUID, resp entities.SurveyResponse) (*entities.FeedbackRecord, error) {
	record, err := s.repo.FindByID(ctx, surveyID)
	if err != nil {
		return nil, usecaseErrors.ErrSurveyNotFound
	}

	record.AddResponse(resp)
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store survey response: %w", err)
	}
	return record, nil
}

// AggregateSeries reduces all completed responses for a series. A nil
// aggregation with a nil error means no feedback exists yet.
func (s *Service) AggregateSeries(ctx context.Context, recurringMeetingID string) (*entities.AggregatedFeedback, error) {
	records, err := s.repo.FindBySeries(ctx, recurringMeetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load series records: %w", err)
	}
	return Aggregate(records, recurringMeetingID), nil
}

// SuggestionsForSeries aggregates a series and runs the rule engine
// over the result
func (s *Service) SuggestionsForSeries(ctx context.Context, recurringMeetingID string) ([]entities.Suggestion, error) {
	agg, err := s.AggregateSeries(ctx, recurringMeetingID)
	if err != nil {
		return nil, err
	}
	return GenerateSuggestions(agg), nil
}

// ScheduledSurveys lists the series records still waiting for their
// first response. Used to target invitation dispatch.
func (s *Service) ScheduledSurveys(ctx context.Context, recurringMeetingID string) ([]entities.FeedbackRecord, error) {
	records, err := s.repo.FindBySeries(ctx, recurringMeetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load series records: %w", err)
	}

	scheduled := make([]entities.FeedbackRecord, 0, len(records))
	for _, record := range records {
		if record.Status == entities.SurveyStatusScheduled {
			scheduled = append(scheduled, record)
		}
	}
	return scheduled, nil
}

// MarkSeriesProcessed transitions every completed record of a series
// to processed and reports how many records moved. Calling it again is
// a harmless no-op.
func (s *Service) MarkSeriesProcessed(ctx context.Context, recurringMeetingID string) (int, error) {
	records, err := s.repo.FindBySeries(ctx, recurringMeetingID)
	if err != nil {
		return 0, fmt.Errorf("failed to load series records: %w", err)
	}

	processed := 0
	for i := range records {
		record := records[i]
		if record.Status != entities.SurveyStatusCompleted {
			continue
		}
		record.MarkProcessed()
		if err := s.repo.Update(ctx, &record); err != nil {
			return processed, fmt.Errorf("failed to mark survey %s processed: %w", record.ID, err)
		}
		processed++
	}

	if s.logger != nil {
		s.logger.Info("series feedback processed",
			zap.String("series_id", recurringMeetingID),
			zap.Int("records", processed),
		)
	}
	return processed, nil
}
