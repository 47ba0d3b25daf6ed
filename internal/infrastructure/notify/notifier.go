package notify

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/marinazub/meeting-insights/errors"
)

const channelMaxElapsed = 30 * time.Second

// Invitation is a survey invitation to be delivered to participants.
type Invitation struct {
	SurveyID     string
	MeetingTitle string
	SurveyURL    string
}

// Notifier delivers a survey invitation over one channel.
type Notifier interface {
	// Name identifies the channel in logs and error reports.
	Name() string

	// Send delivers the invitation. Implementations return an error
	// only for failures worth retrying or reporting.
	Send(ctx context.Context, inv Invitation) error
}

// Dispatcher fans an invitation out to every configured channel.
type Dispatcher struct {
	channels []Notifier
	logger   *zap.Logger
}

// NewDispatcher creates a dispatcher over the given channels
func NewDispatcher(logger *zap.Logger, channels ...Notifier) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		logger:   logger,
	}
}

// Dispatch sends the invitation over all channels in parallel. Each
// channel retries independently with exponential backoff; one channel's
// failure never blocks another. Dispatch succeeds only when every
// channel succeeds, and the returned error names each failed channel.
func (d *Dispatcher) Dispatch(ctx context.Context, inv Invitation) error {
	if len(d.channels) == 0 {
		return nil
	}

	type channelResult struct {
		name string
		err  error
	}

	results := make(chan channelResult, len(d.channels))
	var wg sync.WaitGroup

	for _, ch := range d.channels {
		wg.Add(1)
		go func(ch Notifier) {
			defer wg.Done()
			err := d.sendWithRetry(ctx, ch, inv)
			results <- channelResult{name: ch.Name(), err: err}
		}(ch)
	}

	wg.Wait()
	close(results)

	var failed []string
	for res := range results {
		if res.err != nil {
			failed = append(failed, res.name+": "+res.err.Error())
			d.logger.Error("notification channel failed",
				zap.String("channel", res.name),
				zap.String("survey_id", inv.SurveyID),
				zap.Error(res.err))
			continue
		}
		d.logger.Info("notification delivered",
			zap.String("channel", res.name),
			zap.String("survey_id", inv.SurveyID))
	}

	if len(failed) > 0 {
		return errors.ErrNotifyDispatchFailed(
			&dispatchError{channels: failed},
		)
	}
	return nil
}

func (d *Dispatcher) sendWithRetry(ctx context.Context, ch Notifier, inv Invitation) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = channelMaxElapsed

	return backoff.Retry(func() error {
		return ch.Send(ctx, inv)
	}, backoff.WithContext(policy, ctx))
}

type dispatchError struct {
	channels []string
}

func (e *dispatchError) Error() string {
	return "delivery failed on: " + strings.Join(e.channels, "; ")
}
