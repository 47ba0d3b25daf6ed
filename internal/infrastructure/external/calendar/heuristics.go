package calendar

import (
	"math"
	"strings"
	"time"

	"github.com/marinazub/meeting-insights/internal/domain/entities"
)

// Fraction of attendees assumed to speak when the invite carries no
// explicit speaker list.
const speakerFraction = 0.4

// Title keywords that mark a meeting as a one-way information share.
var asyncTitleKeywords = []string{
	"status",
	"update",
	"standup",
	"stand-up",
	"sync",
	"fyi",
	"readout",
}

// ToMeetings converts raw provider events into meetings ready for
// scoring. Outcome fields stay unknown; calendars do not record whether
// a decision was made or a follow-up was sent.
//
// Events without a positive duration are dropped: all-day entries
// (holidays, OOO blocks) carry date-only start/end values that decode
// to zero times, and they are not meetings to score.
func ToMeetings(events []Event) []entities.Meeting {
	meetings := make([]entities.Meeting, 0, len(events))
	for _, ev := range events {
		if ev.End.Sub(ev.Start) < time.Minute {
			continue
		}
		meetings = append(meetings, toMeeting(ev))
	}
	return meetings
}

func toMeeting(ev Event) entities.Meeting {
	attendees := ev.AttendeeCount
	if attendees < 1 {
		// Solo events report no attendee list; count the organizer.
		attendees = 1
	}

	return entities.Meeting{
		Title:                ev.Title,
		DurationMinutes:      int(ev.End.Sub(ev.Start).Minutes()),
		ParticipantCount:     attendees,
		ExpectedSpeakerCount: estimateSpeakers(attendees),
		HasAgenda:            strings.TrimSpace(ev.Description) != "",
		CouldBeAsync:         looksAsync(ev.Title),
	}
}

// estimateSpeakers assumes roughly speakerFraction of attendees talk,
// never fewer than one.
func estimateSpeakers(attendees int) int {
	speakers := int(math.Ceil(float64(attendees) * speakerFraction))
	if speakers < 1 {
		speakers = 1
	}
	if speakers > attendees {
		speakers = attendees
	}
	return speakers
}

func looksAsync(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range asyncTitleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
