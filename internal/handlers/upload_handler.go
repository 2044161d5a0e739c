package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/resume-summarizer/internal/models"
	"alfredoptarigan/resume-summarizer/internal/services"
)

const (
	FieldJobFile    = "job_file"
	FieldResumeFile = "resume_file"
	FieldPrompt     = "prompt"

	// RequestIDKey is the fiber locals key the request id middleware writes to.
	RequestIDKey = "requestid"
)

type UploadHandler struct {
	pdfParser     services.PDFParserService
	promptBuilder *services.PromptBuilder
	summaryClient services.SummaryClient
}

func NewUploadHandler(
	pdfParser services.PDFParserService,
	promptBuilder *services.PromptBuilder,
	summaryClient services.SummaryClient,
) *UploadHandler {
	return &UploadHandler{
		pdfParser:     pdfParser,
		promptBuilder: promptBuilder,
		summaryClient: summaryClient,
	}
}

// HandleUpload handles POST /upload
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	reqID := requestID(c)

	jobDoc := formDocument(c, FieldJobFile)
	resumeDoc := formDocument(c, FieldResumeFile)
	if jobDoc == nil || resumeDoc == nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorMissingFiles,
		})
	}

	prompt := c.FormValue(FieldPrompt)
	log.Printf("📨 [%s] Frontend request received: %q\n", reqID, prompt)
	log.Printf("📎 [%s] Files: %s=%s (%d bytes), %s=%s (%d bytes)\n",
		reqID, jobDoc.Field, jobDoc.Filename, jobDoc.Size, resumeDoc.Field, resumeDoc.Filename, resumeDoc.Size)

	// Both documents are independent; extract them side by side.
	var jobContent, resumeContent *services.PDFContent
	var g errgroup.Group
	g.Go(func() error {
		content, err := h.pdfParser.ExtractDocument(jobDoc)
		jobContent = content
		return err
	})
	g.Go(func() error {
		content, err := h.pdfParser.ExtractDocument(resumeDoc)
		resumeContent = content
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("❌ [%s] Failed to extract text: %v\n", reqID, err)
		return tryAgain(c)
	}

	log.Printf("📄 [%s] Extracted %s: %d pages, %d characters\n",
		reqID, jobContent.Filename, jobContent.PageCount, len(jobContent.Text))
	log.Printf("📄 [%s] Extracted %s: %d pages, %d characters\n",
		reqID, resumeContent.Filename, resumeContent.PageCount, len(resumeContent.Text))

	summaryPrompt := h.promptBuilder.BuildSummaryPrompt(jobContent.Text, resumeContent.Text, prompt)

	log.Printf("🤖 [%s] Requesting summary...\n", reqID)
	result := h.summaryClient.Summarize(c.UserContext(), summaryPrompt)
	if !result.OK() {
		log.Printf("❌ [%s] Summary failed (%s): %v\n", reqID, result.Failure, result.Err)
		return tryAgain(c)
	}

	log.Printf("✅ [%s] Summary generated: %d characters\n", reqID, len(result.Summary.Text))

	return c.Status(fiber.StatusOK).JSON(models.UploadResponse{
		Message:   models.MessageUploadSuccessful,
		LLMOutput: result.Summary.Text,
	})
}

// formDocument returns nil when the field is absent or carries no filename.
func formDocument(c *fiber.Ctx, field string) *models.Document {
	header, err := c.FormFile(field)
	if err != nil || header == nil || header.Filename == "" {
		return nil
	}
	return models.NewDocument(field, header)
}

func tryAgain(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(models.MessageResponse{
		Message: models.MessageTryAgain,
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok && id != "" {
		return id
	}
	return "-"
}
