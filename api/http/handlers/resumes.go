package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/resume-profiler/api/http/presenter"
	"github.com/artem13815/resume-profiler/pkg/extraction"
	"github.com/artem13815/resume-profiler/pkg/profile"
	"github.com/artem13815/resume-profiler/pkg/resume"
)

// ResumesHandler обслуживает загрузку резюме и управление извлечением профиля.
type ResumesHandler struct {
	svc      *resume.Service
	extract  *extraction.Service
	maxBytes int64
}

func NewResumesHandler(svc *resume.Service, extract *extraction.Service) *ResumesHandler {
	return &ResumesHandler{
		svc:      svc,
		extract:  extract,
		maxBytes: 15 << 20, // 15MB
	}
}

// Upload принимает файл (PDF/DOCX/изображение), сохраняет его, извлекает текст
// и сразу ставит в очередь эвристический прогон извлечения профиля.
func (h *ResumesHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf, docx or image)")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()
	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	ownerID := callerID(c)
	meta, err := h.svc.Upload(c.Context(), ownerID, fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, resume.ErrUnsupportedFormat) {
			return presenter.Error(c, http.StatusBadRequest, resume.ErrUnsupportedFormat.Error())
		}
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to process resume: %v", err))
	}

	// fire-and-forget, исход виден через /resumes/:id/profile
	extractionState := "queued"
	if err := h.extract.Start(c.Context(), meta.ID, profile.StrategyHeuristic); err != nil {
		extractionState = "not_started"
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"id":         meta.ID.String(),
		"filename":   meta.Filename,
		"sizeB":      meta.Size,
		"extraction": extractionState,
	})
}

// List возвращает резюме текущего пользователя.
func (h *ResumesHandler) List(c *fiber.Ctx) error {
	items, err := h.svc.List(c.Context(), callerID(c), 50, 0)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list resumes")
	}
	if items == nil {
		items = []resume.Resume{}
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get возвращает метаданные и (опционально) извлечённый текст.
func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	meta, text, err := h.svc.Get(c.Context(), callerID(c), id)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"meta":   meta,
		"parsed": text,
	})
}

// Delete удаляет резюме вместе с файлом и записью извлечения.
func (h *ResumesHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Context(), callerID(c), id); err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	return c.SendStatus(http.StatusNoContent)
}

// Extract запускает прогон извлечения; ?strategy=llm выбирает LLM-путь.
// Возвращает 202: результат появится в /resumes/:id/profile.
func (h *ResumesHandler) Extract(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if _, _, err := h.svc.Get(c.Context(), callerID(c), id); err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}

	strategy := profile.Strategy(c.Query("strategy", string(profile.StrategyHeuristic)))
	err = h.extract.Reprocess(c.Context(), id, strategy)
	switch {
	case err == nil:
		return presenter.JSON(c, http.StatusAccepted, fiber.Map{
			"status":   "accepted",
			"strategy": string(strategy),
		})
	case errors.Is(err, extraction.ErrAlreadyRunning):
		return presenter.Error(c, http.StatusConflict, "extraction already running")
	case errors.Is(err, extraction.ErrShuttingDown):
		return presenter.Error(c, http.StatusServiceUnavailable, "service is shutting down")
	default:
		var cfgErr *profile.ConfigError
		if errors.As(err, &cfgErr) {
			return presenter.Error(c, http.StatusBadRequest, cfgErr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to start extraction")
	}
}

// Profile возвращает текущую запись извлечения: статус, стратегию и профиль.
func (h *ResumesHandler) Profile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if _, _, err := h.svc.Get(c.Context(), callerID(c), id); err != nil {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	rec, err := h.extract.Record(c.Context(), id)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "no extraction run for this resume")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

func callerID(c *fiber.Ctx) uuid.UUID {
	idStr, _ := c.Locals("userId").(string)
	id, _ := uuid.Parse(idStr)
	return id
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
