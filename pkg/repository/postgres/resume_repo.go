package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resume-profiler/pkg/profile"
	"github.com/artem13815/resume-profiler/pkg/resume"
)

// ResumeRepository хранит резюме, извлечённый текст и запись извлечения.
// Профиль лежит одним JSONB-документом: запись прогона заменяется целиком,
// по полям мы её никогда не обновляем.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) (*ResumeRepository, error) {
	r := &ResumeRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResumeRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY,
	owner_id UUID,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	size_bytes BIGINT NOT NULL,
	storage_uri TEXT NOT NULL,
	skills TEXT[] NOT NULL DEFAULT '{}',
	location TEXT NOT NULL DEFAULT '',
	experience_years DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS parsed_resumes (
	resume_id UUID PRIMARY KEY REFERENCES resumes(id) ON DELETE CASCADE,
	text TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS extractions (
	resume_id UUID PRIMARY KEY REFERENCES resumes(id) ON DELETE CASCADE,
	status TEXT NOT NULL,
	strategy TEXT NOT NULL,
	error TEXT NOT NULL DEFAULT '',
	profile JSONB NOT NULL,
	raw_text TEXT NOT NULL DEFAULT '',
	extracted_at TIMESTAMPTZ NOT NULL
);
-- backfill for older schemas
ALTER TABLE resumes ADD COLUMN IF NOT EXISTS skills TEXT[] NOT NULL DEFAULT '{}';
ALTER TABLE resumes ADD COLUMN IF NOT EXISTS location TEXT NOT NULL DEFAULT '';
ALTER TABLE resumes ADD COLUMN IF NOT EXISTS experience_years DOUBLE PRECISION NOT NULL DEFAULT 0;
`)
	return err
}

func (r *ResumeRepository) Create(ctx context.Context, rs resume.Resume) error {
	if rs.ID == uuid.Nil {
		rs.ID = uuid.New()
	}
	if rs.CreatedAt.IsZero() {
		rs.CreatedAt = time.Now().UTC()
	}
	if rs.Skills == nil {
		rs.Skills = []string{}
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO resumes (id, owner_id, filename, mime_type, size_bytes, storage_uri, skills, location, experience_years, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, rs.ID, rs.OwnerID, rs.Filename, rs.MimeType, rs.Size, rs.StorageURI, rs.Skills, rs.Location, rs.ExperienceYears, rs.CreatedAt)
	return err
}

func (r *ResumeRepository) SaveParsed(ctx context.Context, p resume.Parsed) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO parsed_resumes (resume_id, text)
VALUES ($1, $2)
ON CONFLICT (resume_id) DO UPDATE SET text = EXCLUDED.text
`, p.ResumeID, p.Text)
	return err
}

func (r *ResumeRepository) GetParsed(ctx context.Context, resumeID uuid.UUID) (resume.Parsed, error) {
	row := r.pool.QueryRow(ctx, `
SELECT resume_id, text FROM parsed_resumes WHERE resume_id = $1
`, resumeID)
	var p resume.Parsed
	if err := row.Scan(&p.ResumeID, &p.Text); err != nil {
		return resume.Parsed{}, err
	}
	return p, nil
}

const resumeColumns = `id, owner_id, filename, mime_type, size_bytes, storage_uri, skills, location, experience_years, created_at`

func scanResume(row pgx.Row) (resume.Resume, error) {
	var m resume.Resume
	var created time.Time
	if err := row.Scan(&m.ID, &m.OwnerID, &m.Filename, &m.MimeType, &m.Size, &m.StorageURI,
		&m.Skills, &m.Location, &m.ExperienceYears, &created); err != nil {
		return resume.Resume{}, err
	}
	m.CreatedAt = created.UTC()
	if m.Skills == nil {
		m.Skills = []string{}
	}
	return m, nil
}

func (r *ResumeRepository) GetMeta(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	return scanResume(r.pool.QueryRow(ctx, `
SELECT `+resumeColumns+` FROM resumes WHERE id = $1
`, id))
}

func (r *ResumeRepository) GetMetaForOwner(ctx context.Context, ownerID, id uuid.UUID) (resume.Resume, error) {
	return scanResume(r.pool.QueryRow(ctx, `
SELECT `+resumeColumns+` FROM resumes WHERE id = $1 AND owner_id = $2
`, id, ownerID))
}

func (r *ResumeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Resume, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+resumeColumns+` FROM resumes WHERE owner_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []resume.Resume
	for rows.Next() {
		m, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func (r *ResumeRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) (resume.Resume, error) {
	return scanResume(r.pool.QueryRow(ctx, `
DELETE FROM resumes WHERE id = $1 AND owner_id = $2
RETURNING `+resumeColumns+`
`, id, ownerID))
}

func (r *ResumeRepository) SaveExtraction(ctx context.Context, rec profile.Record) error {
	doc, err := json.Marshal(rec.Profile)
	if err != nil {
		return fmt.Errorf("marshal extracted profile: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO extractions (resume_id, status, strategy, error, profile, raw_text, extracted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (resume_id) DO UPDATE SET
	status = EXCLUDED.status,
	strategy = EXCLUDED.strategy,
	error = EXCLUDED.error,
	profile = EXCLUDED.profile,
	raw_text = EXCLUDED.raw_text,
	extracted_at = EXCLUDED.extracted_at
`, rec.ResumeID, string(rec.Status), string(rec.Strategy), rec.Error, doc, rec.RawText, rec.ExtractedAt)
	return err
}

func (r *ResumeRepository) GetRecord(ctx context.Context, resumeID uuid.UUID) (profile.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT resume_id, status, strategy, error, profile, raw_text, extracted_at
FROM extractions WHERE resume_id = $1
`, resumeID)
	var rec profile.Record
	var status, strategy string
	var doc []byte
	var extractedAt time.Time
	if err := row.Scan(&rec.ResumeID, &status, &strategy, &rec.Error, &doc, &rec.RawText, &extractedAt); err != nil {
		return profile.Record{}, err
	}
	rec.Status = profile.Status(status)
	rec.Strategy = profile.Strategy(strategy)
	rec.ExtractedAt = extractedAt.UTC()
	if err := json.Unmarshal(doc, &rec.Profile); err != nil {
		return profile.Record{}, fmt.Errorf("unmarshal extracted profile: %w", err)
	}
	rec.Profile.Normalize()
	return rec, nil
}

func (r *ResumeRepository) SyncExtracted(ctx context.Context, resumeID uuid.UUID, skills []string, location string, years float64) error {
	if skills == nil {
		skills = []string{}
	}
	tag, err := r.pool.Exec(ctx, `
UPDATE resumes SET skills = $2, location = $3, experience_years = $4 WHERE id = $1
`, resumeID, skills, location, years)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("resume not found")
	}
	return nil
}
