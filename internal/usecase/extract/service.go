package extract

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/winniio/meetingpress/errors"
	"github.com/winniio/meetingpress/internal/domain/entities"
	"github.com/winniio/meetingpress/internal/infrastructure/cache"
)

// dateRangeLayout is the operator-facing input format, DD-MM-YYYY HH:MM
const dateRangeLayout = "02-01-2006 15:04"

// summaryCachePrefix namespaces cached Fireflies summaries
const summaryCachePrefix = "fireflies:summary:"

// Provider is the transcription provider surface the extractor depends on.
// Both methods are fail-soft: they return empty values instead of errors.
type Provider interface {
	FetchMeetings(ctx context.Context, fromTimestamp, toTimestamp string) []entities.Meeting
	GetSummary(ctx context.Context, meetingID string) entities.MeetingSummary
}

// Service pulls meetings and summaries from the provider and shapes them
// into pipeline input
type Service struct {
	provider   Provider
	cache      cache.Store
	summaryTTL time.Duration
	logger     *zap.Logger
}

// NewService constructs the extraction service
func NewService(provider Provider, store cache.Store, summaryTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		provider:   provider,
		cache:      store,
		summaryTTL: summaryTTL,
		logger:     logger,
	}
}

// ParseDateRange converts two DD-MM-YYYY HH:MM strings into ISO-8601
// Z-suffixed timestamps. Malformed input is a hard error, unlike the
// fail-soft fetch calls.
func ParseDateRange(start, end string) (string, string, error) {
	startTime, err := time.Parse(dateRangeLayout, start)
	if err != nil {
		return "", "", apperrors.ErrInvalidDateRange(err)
	}
	endTime, err := time.Parse(dateRangeLayout, end)
	if err != nil {
		return "", "", apperrors.ErrInvalidDateRange(err)
	}

	const iso = "2006-01-02T15:04:05Z"
	return startTime.Format(iso), endTime.Format(iso), nil
}

// GroupSpeakerText collapses consecutive same-speaker sentences into one
// line per speaker run, "speaker: text text text". Adjacent output lines
// never share a speaker by construction. Empty input yields an empty string.
func GroupSpeakerText(sentences []entities.Sentence) string {
	var result []string

	currentSpeaker := ""
	started := false
	var currentText []string

	for _, s := range sentences {
		if !started || s.SpeakerName != currentSpeaker {
			if started {
				result = append(result, currentSpeaker+": "+strings.Join(currentText, " "))
			}
			currentSpeaker = s.SpeakerName
			currentText = []string{s.RawText}
			started = true
		} else {
			currentText = append(currentText, s.RawText)
		}
	}

	if started {
		result = append(result, currentSpeaker+": "+strings.Join(currentText, " "))
	}

	return strings.Join(result, "\n")
}

// ListMeetings fetches meetings inside [from, to]. Provider order is kept.
func (s *Service) ListMeetings(ctx context.Context, fromTimestamp, toTimestamp string) []entities.Meeting {
	return s.provider.FetchMeetings(ctx, fromTimestamp, toTimestamp)
}

// FindMeetingByID scans the window [since, now] for a meeting with the
// given id
func (s *Service) FindMeetingByID(ctx context.Context, meetingID string, since time.Time) (*entities.Meeting, error) {
	const iso = "2006-01-02T15:04:05Z"
	from := since.UTC().Format(iso)
	to := time.Now().UTC().Format(iso)

	for _, m := range s.provider.FetchMeetings(ctx, from, to) {
		if m.ID == meetingID {
			meeting := m
			return &meeting, nil
		}
	}

	return nil, apperrors.ErrMeetingNotFound(meetingID)
}

// GetSummary returns the meeting summary, read through the cache. Cache
// problems are logged and fall back to a direct provider call; an empty
// summary is never cached because it is indistinguishable from a failed
// fetch.
func (s *Service) GetSummary(ctx context.Context, meetingID string) entities.MeetingSummary {
	key := summaryCachePrefix + meetingID

	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, key); err != nil {
			s.logger.Warn("extract.summary_cache.get_failed", zap.String("meeting_id", meetingID), zap.Error(err))
		} else if ok {
			var summary entities.MeetingSummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return summary
			}
			s.logger.Warn("extract.summary_cache.decode_failed", zap.String("meeting_id", meetingID), zap.Error(err))
		}
	}

	summary := s.provider.GetSummary(ctx, meetingID)

	if s.cache != nil && !summary.IsEmpty() {
		if encoded, err := json.Marshal(summary); err == nil {
			if err := s.cache.Set(ctx, key, string(encoded), s.summaryTTL); err != nil {
				s.logger.Warn("extract.summary_cache.set_failed", zap.String("meeting_id", meetingID), zap.Error(err))
			}
		}
	}

	return summary
}

// ExtractMeetingData fetches the meetings in range and assembles the
// combined record for the meeting at the 1-based index. Returns nil (no
// error) when the range holds no meetings; an index outside [1, count] is
// a hard error.
func (s *Service) ExtractMeetingData(ctx context.Context, fromTimestamp, toTimestamp string, meetingNumber int) (*entities.MeetingData, error) {
	meetings := s.provider.FetchMeetings(ctx, fromTimestamp, toTimestamp)
	if len(meetings) == 0 {
		s.logger.Info("extract.no_meetings_in_range",
			zap.String("from", fromTimestamp),
			zap.String("to", toTimestamp),
		)
		return nil, nil
	}

	if meetingNumber < 1 || meetingNumber > len(meetings) {
		return nil, apperrors.ErrMeetingIndexOutOfRange(meetingNumber, len(meetings))
	}

	selected := meetings[meetingNumber-1]

	return &entities.MeetingData{
		MeetingTitle: selected.Title,
		MeetingTime:  selected.DateString,
		MeetingID:    selected.ID,
		Transcript:   GroupSpeakerText(selected.Sentences),
		Summary:      s.GetSummary(ctx, selected.ID),
	}, nil
}
