package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostFromBlogText(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Post
	}{
		{
			name: "title blank line body",
			text: "My Title\n\nFirst paragraph.\nSecond paragraph.",
			want: Post{Title: "My Title", Content: "First paragraph.\nSecond paragraph."},
		},
		{
			name: "two lines without separator",
			text: "My Title\nThe body.",
			want: Post{Title: "My Title", Content: "The body."},
		},
		{
			name: "title only",
			text: "My Title",
			want: Post{Title: "My Title", Content: ""},
		},
		{
			name: "empty input",
			text: "",
			want: Post{Title: "", Content: ""},
		},
		{
			name: "surrounding whitespace is trimmed",
			text: "  My Title  \n\n  The body.  ",
			want: Post{Title: "My Title", Content: "The body."},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, PostFromBlogText(tc.text))
		})
	}
}

func TestPostStatusIsValid(t *testing.T) {
	require.True(t, PostStatusDraft.IsValid())
	require.True(t, PostStatusPublish.IsValid())
	require.True(t, PostStatusFuture.IsValid())
	require.False(t, PostStatus("pending").IsValid())
	require.False(t, PostStatus("").IsValid())
}

func TestPipelineRunResolveStatus(t *testing.T) {
	run := NewPipelineRun("m-1")
	run.ResolveStatus()
	require.Equal(t, PipelineRunStatusCompleted, run.Status)

	run.AnonymizeFailed = true
	run.ResolveStatus()
	require.Equal(t, PipelineRunStatusPartial, run.Status)

	run.SummarizeFailed = true
	run.WriteFailed = true
	run.ResolveStatus()
	require.Equal(t, PipelineRunStatusFailed, run.Status)
}
