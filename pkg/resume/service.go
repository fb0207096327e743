package resume

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service — прикладные операции над резюме: загрузка файла с извлечением
// текста, чтение и удаление. Запуск извлечения профиля живёт отдельно,
// в pkg/extraction.
type Service struct {
	repo      Repository
	extractor *TextExtractor
	baseDir   string
}

func NewService(repo Repository, extractor *TextExtractor, baseDir string) *Service {
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &Service{repo: repo, extractor: extractor, baseDir: baseDir}
}

// Upload сохраняет файл на диск, извлекает текст и создаёт метаданные.
// Файл с нечитаемым содержимым отклоняется сразу, на диске не остаётся.
func (s *Service) Upload(ctx context.Context, ownerID uuid.UUID, filename, mimeType string, data []byte) (Resume, error) {
	text, err := s.extractor.Extract(ctx, filename, data)
	if err != nil {
		return Resume{}, fmt.Errorf("extract text: %w", err)
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return Resume{}, fmt.Errorf("prepare storage: %w", err)
	}
	id := uuid.New()
	ext := strings.ToLower(filepath.Ext(filename))
	dst := filepath.Join(s.baseDir, id.String()+ext)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return Resume{}, fmt.Errorf("store file: %w", err)
	}

	meta := Resume{
		ID:         id,
		OwnerID:    ownerID,
		Filename:   filename,
		MimeType:   mimeType,
		Size:       int64(len(data)),
		StorageURI: dst,
		Skills:     []string{},
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, meta); err != nil {
		_ = os.Remove(dst)
		return Resume{}, fmt.Errorf("save metadata: %w", err)
	}
	if err := s.repo.SaveParsed(ctx, Parsed{ResumeID: id, Text: text}); err != nil {
		return Resume{}, fmt.Errorf("save parsed text: %w", err)
	}
	return meta, nil
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

// Get возвращает метаданные и сырой текст; текст может быть пустым,
// если извлечение ещё не выполнялось.
func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (Resume, string, error) {
	meta, err := s.repo.GetMetaForOwner(ctx, ownerID, id)
	if err != nil {
		return Resume{}, "", err
	}
	parsed, _ := s.repo.GetParsed(ctx, id)
	return meta, parsed.Text, nil
}

// Delete удаляет запись и файл на диске.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	meta, err := s.repo.DeleteForOwner(ctx, ownerID, id)
	if err != nil {
		return err
	}
	_ = os.Remove(meta.StorageURI)
	return nil
}
