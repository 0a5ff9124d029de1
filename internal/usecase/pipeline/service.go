package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/winniio/meetingpress/internal/domain/entities"
	domainrepo "github.com/winniio/meetingpress/internal/domain/repositories"
)

// Generator is the text-generation backend used by every stage
type Generator interface {
	ChatCompletion(ctx context.Context, system, user string) (string, error)
}

// Archiver stores run artifacts (summary, transcript, blog post) for later
// inspection
type Archiver interface {
	UploadText(ctx context.Context, objectName string, content string) error
}

// RunInput is the material one pipeline invocation starts from
type RunInput struct {
	MeetingID         string
	MeetingTitle      string
	MeetingTime       string
	Summary           entities.MeetingSummary
	Transcript        string
	IncludeTranscript bool
}

// RunOutput carries the tagged result of each stage. Created fresh per
// invocation and discarded once the caller has read the three outputs.
type RunOutput struct {
	RunID      string
	Overview   StageResult
	Anonymized StageResult
	BlogPost   StageResult
}

// Reconciled is the caller-facing view of a run after placeholder
// substitution: always three non-empty text fields, safe for downstream use.
type Reconciled struct {
	Overview   string `json:"summary"`
	Anonymized string `json:"anonymized"`
	BlogPost   string `json:"blog_post"`
}

// Service drives the three-stage chain Summarize -> Anonymize -> Write.
// Stages run synchronously, in order, exactly once per invocation; a
// failed stage never halts the chain.
type Service struct {
	generator Generator
	runRepo   domainrepo.RunRepository
	archiver  Archiver
	model     string
	logger    *zap.Logger
}

// NewService constructs the pipeline service. runRepo and archiver may be
// nil; runs then go unrecorded.
func NewService(generator Generator, runRepo domainrepo.RunRepository, archiver Archiver, model string, logger *zap.Logger) *Service {
	return &Service{
		generator: generator,
		runRepo:   runRepo,
		archiver:  archiver,
		model:     model,
		logger:    logger,
	}
}

// summarize is stage 1: produce an overview from the provider summary,
// optionally grounded in the full transcript
func (s *Service) summarize(ctx context.Context, input RunInput) StageResult {
	summaryJSON, err := json.Marshal(input.Summary)
	if err != nil {
		return stageFailed(summarizeFailurePrefix, err)
	}

	var transcript string
	if input.IncludeTranscript {
		transcript = input.Transcript
	}

	prompt := buildSummarizerPrompt(string(summaryJSON), transcript, input.IncludeTranscript)

	result, err := s.generator.ChatCompletion(ctx, summarizerSystemPrompt, prompt)
	if err != nil {
		s.logger.Error("pipeline.summarize.failed", zap.String("meeting_id", input.MeetingID), zap.Error(err))
		return stageFailed(summarizeFailurePrefix, err)
	}

	return stageOK(strings.TrimSpace(result))
}

// anonymize is stage 2: strip names and confidential content from the
// stage-1 overview
func (s *Service) anonymize(ctx context.Context, overview StageResult) StageResult {
	if !overview.OK {
		return stageFailed(anonymizeFailurePrefix, errors.New("summarize stage produced no output"))
	}

	result, err := s.generator.ChatCompletion(ctx, anonymizerSystemPrompt, buildAnonymizerPrompt(overview.Text))
	if err != nil {
		s.logger.Error("pipeline.anonymize.failed", zap.Error(err))
		return stageFailed(anonymizeFailurePrefix, err)
	}

	return stageOK(strings.TrimSpace(result))
}

// write is stage 3: turn the anonymized overview into blog post text,
// title line first
func (s *Service) write(ctx context.Context, anonymized StageResult) StageResult {
	if !anonymized.OK {
		return stageFailed(writeFailurePrefix, errors.New("anonymize stage produced no output"))
	}

	result, err := s.generator.ChatCompletion(ctx, writerSystemPrompt, buildWriterPrompt(anonymized.Text))
	if err != nil {
		s.logger.Error("pipeline.write.failed", zap.Error(err))
		return stageFailed(writeFailurePrefix, err)
	}

	return stageOK(strings.TrimSpace(result))
}

// Run executes the full chain for one meeting and records the run. The
// returned output always holds three stage results; inspect the OK flags
// or call Reconcile before using the text downstream.
func (s *Service) Run(ctx context.Context, input RunInput) *RunOutput {
	started := time.Now()

	overview := s.summarize(ctx, input)
	anonymized := s.anonymize(ctx, overview)
	blogPost := s.write(ctx, anonymized)

	run := entities.NewPipelineRun(input.MeetingID)
	run.MeetingTitle = input.MeetingTitle
	run.MeetingTime = input.MeetingTime
	run.Summary = datatypes.NewJSONType(input.Summary)
	run.IncludedTranscript = input.IncludeTranscript
	run.Overview = overview.Text
	run.AnonymizedOverview = anonymized.Text
	run.BlogPost = blogPost.Text
	run.SummarizeFailed = !overview.OK
	run.AnonymizeFailed = !anonymized.OK
	run.WriteFailed = !blogPost.OK
	run.ModelUsed = s.model
	run.ProcessingTime = int(time.Since(started).Milliseconds())
	run.ResolveStatus()

	s.recordRun(ctx, run, input)

	s.logger.Info("pipeline.run.finished",
		zap.String("run_id", run.ID.String()),
		zap.String("meeting_id", input.MeetingID),
		zap.String("status", string(run.Status)),
		zap.Int("processing_ms", run.ProcessingTime),
	)

	return &RunOutput{
		RunID:      run.ID.String(),
		Overview:   overview,
		Anonymized: anonymized,
		BlogPost:   blogPost,
	}
}

// recordRun archives the run in the database and object storage. Both are
// best-effort: a recording failure must not fail a finished run.
func (s *Service) recordRun(ctx context.Context, run *entities.PipelineRun, input RunInput) {
	if s.runRepo != nil {
		if err := s.runRepo.CreateRun(ctx, run); err != nil {
			s.logger.Error("pipeline.run.persist_failed", zap.String("run_id", run.ID.String()), zap.Error(err))
		}
	}

	if s.archiver == nil {
		return
	}

	prefix := fmt.Sprintf("runs/%s/", run.ID.String())

	if encoded, err := json.MarshalIndent(input.Summary, "", "  "); err == nil {
		if err := s.archiver.UploadText(ctx, prefix+"fireflies_summary.json", string(encoded)); err != nil {
			s.logger.Warn("pipeline.archive.summary_failed", zap.String("run_id", run.ID.String()), zap.Error(err))
		}
	}

	if input.Transcript != "" {
		if err := s.archiver.UploadText(ctx, prefix+"meeting_transcript.txt", input.Transcript); err != nil {
			s.logger.Warn("pipeline.archive.transcript_failed", zap.String("run_id", run.ID.String()), zap.Error(err))
		}
	}

	if err := s.archiver.UploadText(ctx, prefix+"blog_post.txt", run.BlogPost); err != nil {
		s.logger.Warn("pipeline.archive.blog_post_failed", zap.String("run_id", run.ID.String()), zap.Error(err))
	}
}

// Reconcile substitutes user-facing placeholders for failed stages so
// downstream consumers always receive presentable text.
func Reconcile(out *RunOutput) Reconciled {
	rec := Reconciled{
		Overview:   out.Overview.Text,
		Anonymized: out.Anonymized.Text,
		BlogPost:   out.BlogPost.Text,
	}

	if !out.Overview.OK {
		rec.Overview = overviewPlaceholder
	}
	if !out.Anonymized.OK {
		rec.Anonymized = anonymizedPlaceholder
	}
	if !out.BlogPost.OK {
		rec.BlogPost = blogPostPlaceholder
	}

	return rec
}
