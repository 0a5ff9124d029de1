package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PipelineRunStatus is the terminal state of a pipeline run
type PipelineRunStatus string

const (
	PipelineRunStatusCompleted PipelineRunStatus = "completed"
	PipelineRunStatusPartial   PipelineRunStatus = "partial"
	PipelineRunStatusFailed    PipelineRunStatus = "failed"
)

// PipelineRun archives one pipeline invocation: the input summary and the
// three stage outputs, with per-stage failure flags.
type PipelineRun struct {
	ID                 uuid.UUID                                 `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID          string                                    `json:"meeting_id" gorm:"type:varchar(255);not null;index"`
	MeetingTitle       string                                    `json:"meeting_title" gorm:"type:varchar(500)"`
	MeetingTime        string                                    `json:"meeting_time" gorm:"type:varchar(100)"`
	Summary            datatypes.JSONType[MeetingSummary]        `json:"summary" gorm:"type:jsonb"`
	IncludedTranscript bool                                      `json:"included_transcript" gorm:"default:false"`
	Overview           string                                    `json:"overview" gorm:"type:text"`
	AnonymizedOverview string                                    `json:"anonymized_overview" gorm:"type:text"`
	BlogPost           string                                    `json:"blog_post" gorm:"type:text"`
	SummarizeFailed    bool                                      `json:"summarize_failed" gorm:"default:false"`
	AnonymizeFailed    bool                                      `json:"anonymize_failed" gorm:"default:false"`
	WriteFailed        bool                                      `json:"write_failed" gorm:"default:false"`
	Status             PipelineRunStatus                         `json:"status" gorm:"type:varchar(20);default:'completed'"`
	ModelUsed          string                                    `json:"model_used,omitempty" gorm:"type:varchar(100)"`
	ProcessingTime     int                                       `json:"processing_time,omitempty"` // in milliseconds
	CreatedAt          time.Time                                 `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time                                 `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for PipelineRun
func (PipelineRun) TableName() string {
	return "pipeline_runs"
}

// NewPipelineRun creates a new PipelineRun entity
func NewPipelineRun(meetingID string) *PipelineRun {
	return &PipelineRun{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Status:    PipelineRunStatusCompleted,
	}
}

// ResolveStatus derives the run status from the per-stage failure flags
func (r *PipelineRun) ResolveStatus() {
	switch {
	case r.SummarizeFailed && r.AnonymizeFailed && r.WriteFailed:
		r.Status = PipelineRunStatusFailed
	case r.SummarizeFailed || r.AnonymizeFailed || r.WriteFailed:
		r.Status = PipelineRunStatusPartial
	default:
		r.Status = PipelineRunStatusCompleted
	}
}
