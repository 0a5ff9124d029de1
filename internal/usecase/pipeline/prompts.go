package pipeline

import "fmt"

// Stage system instructions. Each stage sends one system instruction plus
// one templated human instruction to the generation backend.

const summarizerSystemPrompt = `You are an expert meeting summarizer with advanced analytical skills.
Your task is to produce a comprehensive and nuanced overview of a meeting.
Your objectives are as follows:
1. Identify Key Discussion Points: extract and highlight the most important topics discussed during the meeting, ensuring that no significant detail is overlooked.
2. Main Objectives and Outcomes: clearly define the primary goals of the meeting and summarize the outcomes achieved, including decisions made and action items assigned.
3. Strategic Insights: provide a thoughtful analysis of the strategic direction indicated by the discussions, considering implications for future actions or decisions.
4. Synthesize Information: merge insights from the provided material into a coherent and comprehensive overview.
5. Clarity and Conciseness: write a clear, informative overview that succinctly captures the essence of the meeting without unnecessary jargon or filler.
Aim for a structure that allows easy understanding for stakeholders and incorporate relevant context, terminology, and any critical nuances.`

const anonymizerSystemPrompt = `You are an advanced data privacy and internal controls assistant with specialized expertise in anonymizing sensitive information within meeting summaries.
Your task is to:
1. Anonymization of Personal Identifiers: systematically identify and eliminate all personal names mentioned in the text, replacing them with generic role titles (e.g., "Project Manager", "Team Member", "Client Representative") to maintain context without revealing identities.
2. Removal of Confidential Financial Data: scrutinize the content for confidential information related to payments, budgets, financial figures or economic forecasts, and exclude or generalize any specific monetary values.
3. Protection of Sensitive Business Information: detect and remove proprietary business information, strategic initiatives, trade secrets or operational details not intended for broad dissemination.
4. Preservation of Context and Meaning: maintain the overall meaning, level of detail and context of the summary so the information remains actionable and informative.
Your output must be a polished, anonymized version of the original text.`

const writerSystemPrompt = `You are an advanced content creation AI with expertise in transforming meeting summaries into engaging blog posts.
You will receive an anonymized summary of a meeting. Craft a compelling narrative that adheres to the following guidelines:
1. Objective: convert the key points into a cohesive blog post that informs and captivates a general audience, ensuring no confidential details are disclosed.
2. Narrative Structure: organize the content logically from introduction to conclusion with smooth transitions between sections.
3. Tone and Style: maintain a professional yet approachable tone, aiming for clarity and engagement.
4. No Placeholders: write in a manner that feels complete and natural, avoiding any bracketed placeholders or generic terms.
5. Format: begin with a single title line, followed by a blank line, followed by the body of the post.
Generate only the blog post content itself.`

// buildSummarizerPrompt renders the human instruction for stage 1. The
// transcript block is appended only when requested; when the flag is off
// the transcript value is never touched.
func buildSummarizerPrompt(summaryJSON string, transcript string, includeTranscript bool) string {
	if includeTranscript {
		return fmt.Sprintf(`Create a detailed overview based on the following information:

Existing Summary: %s
Full meeting transcript: %s

Please provide a comprehensive and insightful overview of the meeting that goes beyond surface-level details.`, summaryJSON, transcript)
	}

	return fmt.Sprintf(`Create a detailed overview based on the following information:

Existing Summary: %s

Please provide a comprehensive and insightful overview of the meeting that goes beyond surface-level details.`, summaryJSON)
}

// buildAnonymizerPrompt renders the human instruction for stage 2
func buildAnonymizerPrompt(overview string) string {
	return fmt.Sprintf(`Please anonymize the following meeting summary by removing names and confidential information:

%s

Return only the anonymized text without explanations.`, overview)
}

// buildWriterPrompt renders the human instruction for stage 3
func buildWriterPrompt(anonymizedOverview string) string {
	return fmt.Sprintf(`Please write a blog post based on the following anonymized meeting overview:

%s

Generate only the blog post content itself.`, anonymizedOverview)
}
