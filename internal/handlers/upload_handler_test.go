package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"alfredoptarigan/resume-summarizer/internal/handlers"
	"alfredoptarigan/resume-summarizer/internal/services"
	"alfredoptarigan/resume-summarizer/internal/testutil"
	"alfredoptarigan/resume-summarizer/mocks"
)

const (
	jobText    = "Looking for a backend engineer."
	resumeText = "5 years Go experience."
)

func newTestApp(gemini services.GeminiService) *fiber.App {
	handler := handlers.NewUploadHandler(
		services.NewPDFParserService(),
		services.NewPromptBuilder(),
		services.NewSummaryClient(gemini, 0, 1),
	)

	app := fiber.New()
	app.Post("/upload", handler.HandleUpload)
	return app
}

func jobFile() testutil.FormFile {
	return testutil.FormFile{Field: handlers.FieldJobFile, Filename: "job.pdf", Data: testutil.BuildPDF(jobText)}
}

func resumeFile() testutil.FormFile {
	return testutil.FormFile{Field: handlers.FieldResumeFile, Filename: "resume.pdf", Data: testutil.BuildPDF(resumeText)}
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestHandleUploadSuccess(t *testing.T) {
	mockGemini := new(mocks.MockGeminiService)
	mockGemini.On("GenerateContent",
		mock.Anything,
		mock.MatchedBy(func(system string) bool {
			return strings.Contains(system, jobText)
		}),
		mock.MatchedBy(func(user string) bool {
			return strings.HasPrefix(user, services.DefaultInstruction) && strings.Contains(user, resumeText)
		}),
	).Return(testutil.TextResponse("The candidate has strong Go experience."), nil).Once()

	app := newTestApp(mockGemini)
	req := testutil.MultipartRequest(t, "/upload", nil, jobFile(), resumeFile())

	status, body := doRequest(t, app, req)

	assert.Equal(t, http.StatusOK, status)

	var got struct {
		Message   string `json:"message"`
		LLMOutput string `json:"llm_output"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "Upload successful", got.Message)
	assert.Equal(t, "The candidate has strong Go experience.", got.LLMOutput)
	mockGemini.AssertExpectations(t)
}

func TestHandleUploadCustomPrompt(t *testing.T) {
	mockGemini := new(mocks.MockGeminiService)
	mockGemini.On("GenerateContent",
		mock.Anything,
		mock.Anything,
		mock.MatchedBy(func(user string) bool {
			return strings.HasPrefix(user, "Focus on leadership.Here is the candidates resume: ") &&
				!strings.Contains(user, services.DefaultInstruction)
		}),
	).Return(testutil.TextResponse("Leadership summary."), nil).Once()

	app := newTestApp(mockGemini)
	req := testutil.MultipartRequest(t, "/upload",
		map[string]string{handlers.FieldPrompt: "Focus on leadership."},
		jobFile(), resumeFile())

	status, _ := doRequest(t, app, req)

	assert.Equal(t, http.StatusOK, status)
	mockGemini.AssertExpectations(t)
}

func TestHandleUploadEmptyPromptUsesDefault(t *testing.T) {
	mockGemini := new(mocks.MockGeminiService)
	mockGemini.On("GenerateContent",
		mock.Anything,
		mock.Anything,
		mock.MatchedBy(func(user string) bool {
			return strings.HasPrefix(user, services.DefaultInstruction)
		}),
	).Return(testutil.TextResponse("Summary."), nil).Once()

	app := newTestApp(mockGemini)
	req := testutil.MultipartRequest(t, "/upload",
		map[string]string{handlers.FieldPrompt: ""},
		jobFile(), resumeFile())

	status, _ := doRequest(t, app, req)

	assert.Equal(t, http.StatusOK, status)
	mockGemini.AssertExpectations(t)
}

func TestHandleUploadMissingFiles(t *testing.T) {
	tests := []struct {
		name  string
		files []testutil.FormFile
	}{
		{name: "missing resume_file", files: []testutil.FormFile{jobFile()}},
		{name: "missing job_file", files: []testutil.FormFile{resumeFile()}},
		{name: "missing both", files: nil},
		{
			name: "empty filename",
			files: []testutil.FormFile{
				jobFile(),
				{Field: handlers.FieldResumeFile, Filename: "", Data: testutil.BuildPDF(resumeText)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGemini := new(mocks.MockGeminiService)
			app := newTestApp(mockGemini)
			req := testutil.MultipartRequest(t, "/upload",
				map[string]string{handlers.FieldPrompt: "hello"}, tt.files...)

			status, body := doRequest(t, app, req)

			assert.Equal(t, http.StatusBadRequest, status)
			assert.JSONEq(t, `{"error": "Missing files"}`, body)
			mockGemini.AssertNotCalled(t, "GenerateContent", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandleUploadNotMultipart(t *testing.T) {
	app := newTestApp(new(mocks.MockGeminiService))
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"job_file": "x"}`))
	req.Header.Set("Content-Type", "application/json")

	status, body := doRequest(t, app, req)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error": "Missing files"}`, body)
}

func TestHandleUploadUnreadableDocument(t *testing.T) {
	tests := []struct {
		name  string
		files []testutil.FormFile
	}{
		{
			name: "job description",
			files: []testutil.FormFile{
				{Field: handlers.FieldJobFile, Filename: "job.pdf", Data: []byte("this is a fake PDF")},
				resumeFile(),
			},
		},
		{
			name: "resume",
			files: []testutil.FormFile{
				jobFile(),
				{Field: handlers.FieldResumeFile, Filename: "resume.pdf", Data: []byte("%PDF-1.4\nbroken")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGemini := new(mocks.MockGeminiService)
			app := newTestApp(mockGemini)
			req := testutil.MultipartRequest(t, "/upload", nil, tt.files...)

			status, body := doRequest(t, app, req)

			assert.Equal(t, http.StatusInternalServerError, status)
			assert.JSONEq(t, `{"message": "Something went wrong, please try again"}`, body)
			assert.NotContains(t, body, "PDF")
			mockGemini.AssertNotCalled(t, "GenerateContent", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandleUploadSummaryFailures(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		err  error
	}{
		{name: "provider error", err: errors.New("401 API key not valid")},
		{name: "nil response"},
		{name: "missing usage metadata", resp: testutil.ResponseWithoutUsage("half a summary")},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGemini := new(mocks.MockGeminiService)
			if tt.resp == nil {
				mockGemini.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			} else {
				mockGemini.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).Return(tt.resp, tt.err).Once()
			}

			app := newTestApp(mockGemini)
			req := testutil.MultipartRequest(t, "/upload", nil, jobFile(), resumeFile())

			status, body := doRequest(t, app, req)

			assert.Equal(t, http.StatusInternalServerError, status)
			assert.JSONEq(t, `{"message": "Something went wrong, please try again"}`, body)
			mockGemini.AssertExpectations(t)
			bodies = append(bodies, body)
		})
	}

	require.Len(t, bodies, len(tests))
	for _, body := range bodies[1:] {
		assert.Equal(t, bodies[0], body)
	}
}
