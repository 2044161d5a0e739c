package services

// DefaultInstruction is used when the caller does not send a prompt.
const DefaultInstruction = "Summarize this resume and see if the candidate is a good fit for the role."

const (
	jobDescriptionLabel = "Here is the job description: "
	resumeLabel         = "Here is the candidates resume: "
)

const systemInstructionTemplate = `You are a helpful resume summarization agent.

You will be given a job description as part of the system prompt and then compare it
against the given resume in the users first regular prompt. Your job is summarize the
applicants abilities according to their resume, and respond with this summary. You are
not to give any suggestions in the response only the summary of the resume.

` + jobDescriptionLabel

type Prompt struct {
	SystemInstruction string
	UserMessage       string
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSummaryPrompt embeds the job description in the system instruction and
// appends the resume to the caller's instruction. Text is passed through
// verbatim, whatever its length.
func (pb *PromptBuilder) BuildSummaryPrompt(jobText, resumeText, instruction string) Prompt {
	if instruction == "" {
		instruction = DefaultInstruction
	}

	return Prompt{
		SystemInstruction: systemInstructionTemplate + jobText,
		UserMessage:       instruction + resumeLabel + resumeText,
	}
}
