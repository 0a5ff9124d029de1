package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/winniio/meetingpress/internal/domain/entities"
)

// fakeGenerator records every prompt it receives and answers from a script
type fakeGenerator struct {
	prompts []string
	systems []string
	answers []string
	errs    []error
	calls   int
}

func (f *fakeGenerator) ChatCompletion(_ context.Context, system, user string) (string, error) {
	f.systems = append(f.systems, system)
	f.prompts = append(f.prompts, user)
	i := f.calls
	f.calls++

	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.answers) {
		return f.answers[i], nil
	}
	return "generated text", nil
}

// fakeArchiver records uploads keyed by object name
type fakeArchiver struct {
	objects map[string]string
}

func (f *fakeArchiver) UploadText(_ context.Context, objectName, content string) error {
	if f.objects == nil {
		f.objects = map[string]string{}
	}
	f.objects[objectName] = content
	return nil
}

func sampleInput() RunInput {
	return RunInput{
		MeetingID:    "m-1",
		MeetingTitle: "Weekly sync",
		MeetingTime:  "2025-06-20T08:00:00.000Z",
		Summary:      entities.MeetingSummary{Gist: "Planning discussion", Overview: "We planned."},
		Transcript:   "Alice: Hello.\nBob: Hi.",
	}
}

func TestRun_AllStagesSucceed(t *testing.T) {
	gen := &fakeGenerator{answers: []string{"the overview", "the anonymized overview", "Title\n\nThe post body."}}
	svc := NewService(gen, nil, nil, "test-model", zap.NewNop())

	out := svc.Run(context.Background(), sampleInput())

	require.Equal(t, 3, gen.calls)
	require.True(t, out.Overview.OK)
	require.True(t, out.Anonymized.OK)
	require.True(t, out.BlogPost.OK)
	require.Equal(t, "the overview", out.Overview.Text)
	require.Equal(t, "the anonymized overview", out.Anonymized.Text)
	require.Equal(t, "Title\n\nThe post body.", out.BlogPost.Text)
	require.NotEmpty(t, out.RunID)

	// each stage feeds the next
	require.Contains(t, gen.prompts[1], "the overview")
	require.Contains(t, gen.prompts[2], "the anonymized overview")
}

func TestRun_TranscriptExcludedByDefault(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewService(gen, nil, nil, "test-model", zap.NewNop())

	input := sampleInput()
	input.IncludeTranscript = false
	svc.Run(context.Background(), input)

	for i, p := range gen.prompts {
		require.NotContains(t, p, "Alice: Hello.", "prompt %d must not carry transcript text", i)
	}
	require.NotContains(t, gen.prompts[0], "Full meeting transcript")
}

func TestRun_TranscriptIncludedWhenRequested(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewService(gen, nil, nil, "test-model", zap.NewNop())

	input := sampleInput()
	input.IncludeTranscript = true
	svc.Run(context.Background(), input)

	require.Contains(t, gen.prompts[0], "Full meeting transcript")
	require.Contains(t, gen.prompts[0], "Alice: Hello.")
}

func TestRun_SummarizeFailureCascades(t *testing.T) {
	gen := &fakeGenerator{errs: []error{errors.New("rate limited")}}
	svc := NewService(gen, nil, nil, "test-model", zap.NewNop())

	out := svc.Run(context.Background(), sampleInput())

	require.False(t, out.Overview.OK)
	require.True(t, strings.HasPrefix(out.Overview.Text, "Failed to generate summary:"))
	require.Contains(t, out.Overview.Text, "rate limited")

	// downstream stages fail as dependent failures without calling the
	// generator again
	require.Equal(t, 1, gen.calls)
	require.False(t, out.Anonymized.OK)
	require.True(t, strings.HasPrefix(out.Anonymized.Text, "Failed to anonymize the summary:"))
	require.False(t, out.BlogPost.OK)
	require.True(t, strings.HasPrefix(out.BlogPost.Text, "Failed to create blog post:"))
}

func TestRun_AnonymizeFailureKeepsOverview(t *testing.T) {
	gen := &fakeGenerator{
		answers: []string{"the overview"},
		errs:    []error{nil, errors.New("model unavailable")},
	}
	svc := NewService(gen, nil, nil, "test-model", zap.NewNop())

	out := svc.Run(context.Background(), sampleInput())

	require.True(t, out.Overview.OK)
	require.False(t, out.Anonymized.OK)
	require.True(t, strings.HasPrefix(out.Anonymized.Text, "Failed to anonymize the summary:"))
	require.False(t, out.BlogPost.OK)
	require.Equal(t, 2, gen.calls)
}

func TestRun_ArchivesArtifacts(t *testing.T) {
	gen := &fakeGenerator{answers: []string{"overview", "anonymized", "Title\n\nBody."}}
	arch := &fakeArchiver{}
	svc := NewService(gen, nil, arch, "test-model", zap.NewNop())

	out := svc.Run(context.Background(), sampleInput())

	prefix := "runs/" + out.RunID + "/"
	require.Contains(t, arch.objects, prefix+"fireflies_summary.json")
	require.Contains(t, arch.objects, prefix+"meeting_transcript.txt")
	require.Contains(t, arch.objects, prefix+"blog_post.txt")
	require.Equal(t, "Title\n\nBody.", arch.objects[prefix+"blog_post.txt"])
	require.Contains(t, arch.objects[prefix+"fireflies_summary.json"], "Planning discussion")
}

func TestRun_EmptyTranscriptNotArchived(t *testing.T) {
	gen := &fakeGenerator{}
	arch := &fakeArchiver{}
	svc := NewService(gen, nil, arch, "test-model", zap.NewNop())

	input := sampleInput()
	input.Transcript = ""
	out := svc.Run(context.Background(), input)

	require.NotContains(t, arch.objects, "runs/"+out.RunID+"/meeting_transcript.txt")
}

func TestReconcile(t *testing.T) {
	out := &RunOutput{
		Overview:   StageResult{OK: true, Text: "overview"},
		Anonymized: StageResult{OK: false, Text: "Failed to anonymize the summary: boom"},
		BlogPost:   StageResult{OK: false, Text: "Failed to create blog post: boom"},
	}

	rec := Reconcile(out)

	require.Equal(t, "overview", rec.Overview)
	require.Equal(t, "No anonymized summary generated.", rec.Anonymized)
	require.Equal(t, "Blog post could not be generated due to prior errors.", rec.BlogPost)
}

func TestReconcile_AllOK(t *testing.T) {
	out := &RunOutput{
		Overview:   StageResult{OK: true, Text: "a"},
		Anonymized: StageResult{OK: true, Text: "b"},
		BlogPost:   StageResult{OK: true, Text: "c"},
	}

	rec := Reconcile(out)

	require.Equal(t, Reconciled{Overview: "a", Anonymized: "b", BlogPost: "c"}, rec)
}
