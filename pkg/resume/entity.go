package resume

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resume-profiler/pkg/profile"
)

// Resume хранит метаданные загруженного файла плюс сводные копии извлечённых
// полей (Skills, Location, ExperienceYears) для поисковых фильтров. Сводные
// поля синхронизируются при каждом успешном прогоне извлечения.
type Resume struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"ownerId,omitempty"`
	Filename        string    `json:"filename"`
	MimeType        string    `json:"mimeType"`
	Size            int64     `json:"size"`
	StorageURI      string    `json:"storageUri,omitempty"`
	Skills          []string  `json:"skills"`
	Location        string    `json:"location,omitempty"`
	ExperienceYears float64   `json:"experienceYears"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Parsed хранит извлечённый из файла сырой текст.
type Parsed struct {
	ResumeID uuid.UUID
	Text     string
}

// Repository — порт доступа к резюме, сырому тексту и записи извлечения.
type Repository interface {
	Create(ctx context.Context, r Resume) error
	SaveParsed(ctx context.Context, p Parsed) error
	GetParsed(ctx context.Context, resumeID uuid.UUID) (Parsed, error)
	// meta
	GetMeta(ctx context.Context, id uuid.UUID) (Resume, error)
	GetMetaForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error)
	// delete (returns deleted meta for file cleanup)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error)
	// extraction record, заменяется целиком при каждом прогоне
	SaveExtraction(ctx context.Context, rec profile.Record) error
	GetRecord(ctx context.Context, resumeID uuid.UUID) (profile.Record, error)
	// сводные поля для поиска
	SyncExtracted(ctx context.Context, resumeID uuid.UUID, skills []string, location string, years float64) error
}
