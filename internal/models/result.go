package models

const (
	MessageUploadSuccessful = "Upload successful"
	MessageTryAgain         = "Something went wrong, please try again"
	ErrorMissingFiles       = "Missing files"
)

type UploadResponse struct {
	Message   string `json:"message"`
	LLMOutput string `json:"llm_output"`
}

// MessageResponse is the body for failures after the files were received.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body for requests rejected before processing.
type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
