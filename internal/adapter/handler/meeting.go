package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/winniio/meetingpress/errors"
	meetingdto "github.com/winniio/meetingpress/internal/adapter/dto/meeting"
	"github.com/winniio/meetingpress/internal/usecase/extract"
	"github.com/winniio/meetingpress/internal/usecase/pipeline"
)

// Meeting handles meeting listing and processing HTTP requests
type Meeting struct {
	extractService  *extract.Service
	pipelineService *pipeline.Service
	logger          *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(extractService *extract.Service, pipelineService *pipeline.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		extractService:  extractService,
		pipelineService: pipelineService,
		logger:          logger,
	}
}

// List returns the meetings inside a date window
// @Summary List meetings in a date range
// @Tags meetings
// @Accept json
// @Produce json
// @Param request body meeting.ListRequest true "Date window, DD-MM-YYYY HH:MM"
// @Success 200 {object} meeting.ListResponse
// @Failure 400 {object} object
// @Security BearerAuth
// @Router /v1/meetings [post]
func (h *Meeting) List(c echo.Context) error {
	ctx := c.Request().Context()

	var req meetingdto.ListRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	from, to, err := extract.ParseDateRange(req.FromDate, req.ToDate)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	meetings := h.extractService.ListMeetings(ctx, from, to)

	items := make([]meetingdto.Item, 0, len(meetings))
	for i, m := range meetings {
		items = append(items, meetingdto.Item{
			Number:        i + 1,
			ID:            m.ID,
			Title:         m.Title,
			Date:          m.DateString,
			SentenceCount: len(m.Sentences),
		})
	}

	return HandleSuccess(h.logger, c, meetingdto.ListResponse{
		Meetings: items,
		Count:    len(items),
	})
}

// Process runs the content pipeline for the meeting with the given id
// @Summary Generate a blog post from one meeting
// @Description Runs summarize, anonymize and write for the meeting, returning all three outputs
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting id"
// @Param request body meeting.ProcessRequest true "Date window and transcript flag"
// @Success 200 {object} meeting.ProcessResponse
// @Failure 404 {object} object
// @Security BearerAuth
// @Router /v1/meetings/{id}/process [post]
func (h *Meeting) Process(c echo.Context) error {
	ctx := c.Request().Context()
	meetingID := c.Param("id")

	var req meetingdto.ProcessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	from, to, err := extract.ParseDateRange(req.FromDate, req.ToDate)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	meetings := h.extractService.ListMeetings(ctx, from, to)

	number := 0
	for i, m := range meetings {
		if m.ID == meetingID {
			number = i + 1
			break
		}
	}
	if number == 0 {
		return HandleError(h.logger, c, apperrors.ErrMeetingNotFound(meetingID))
	}

	data, err := h.extractService.ExtractMeetingData(ctx, from, to, number)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if data == nil {
		return HandleError(h.logger, c, apperrors.ErrMeetingNotFound(meetingID))
	}

	out := h.pipelineService.Run(ctx, pipeline.RunInput{
		MeetingID:         data.MeetingID,
		MeetingTitle:      data.MeetingTitle,
		MeetingTime:       data.MeetingTime,
		Summary:           data.Summary,
		Transcript:        data.Transcript,
		IncludeTranscript: req.IncludeTranscript,
	})

	rec := pipeline.Reconcile(out)

	message := "Pipeline completed"
	if !out.Overview.OK || !out.Anonymized.OK || !out.BlogPost.OK {
		message = "Pipeline completed with errors"
	}

	return HandleSuccess(h.logger, c, meetingdto.ProcessResponse{
		Message:    message,
		RunID:      out.RunID,
		MeetingID:  data.MeetingID,
		Summary:    rec.Overview,
		Anonymized: rec.Anonymized,
		BlogPost:   rec.BlogPost,
	})
}
