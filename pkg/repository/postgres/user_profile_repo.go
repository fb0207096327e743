package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resume-profiler/pkg/user"
)

// UserProfileRepository implements user.Repository backed by PostgreSQL (pgx).
type UserProfileRepository struct {
	pool *pgxpool.Pool
}

func NewUserProfileRepository(pool *pgxpool.Pool) (*UserProfileRepository, error) {
	repo := &UserProfileRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *UserProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS user_profiles (
	user_id UUID PRIMARY KEY,
	full_name TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	bio TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	job_title TEXT NOT NULL DEFAULT '',
	company TEXT NOT NULL DEFAULT '',
	website TEXT NOT NULL DEFAULT '',
	skills TEXT[] NOT NULL DEFAULT '{}',
	experience_summary TEXT NOT NULL DEFAULT '',
	linkedin TEXT NOT NULL DEFAULT '',
	github TEXT NOT NULL DEFAULT '',
	total_experience_years DOUBLE PRECISION NOT NULL DEFAULT 0,
	current_position TEXT NOT NULL DEFAULT '',
	availability TEXT NOT NULL DEFAULT '',
	enhanced_from_extraction BOOLEAN NOT NULL DEFAULT FALSE,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

// GetByUserID возвращает анкету пользователя. Для неизвестного пользователя
// возвращается пустая анкета с проставленным UserID, это не ошибка.
func (r *UserProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.pool.QueryRow(ctx, `
SELECT user_id, full_name, phone, bio, location, job_title, company, website, skills,
	experience_summary, linkedin, github, total_experience_years, current_position,
	availability, enhanced_from_extraction, updated_at
FROM user_profiles WHERE user_id = $1
`, userID)
	var p user.Profile
	var updated time.Time
	err := row.Scan(&p.UserID, &p.FullName, &p.Phone, &p.Bio, &p.Location, &p.JobTitle,
		&p.Company, &p.Website, &p.Skills, &p.ExperienceSummary, &p.LinkedIn, &p.GitHub,
		&p.TotalExperienceYears, &p.CurrentRole, &p.Availability, &p.EnhancedFromExtraction, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{UserID: userID, Skills: []string{}}, nil
		}
		return user.Profile{}, err
	}
	p.UpdatedAt = updated.UTC()
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}

func (r *UserProfileRepository) Save(ctx context.Context, p user.Profile) error {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO user_profiles (user_id, full_name, phone, bio, location, job_title, company,
	website, skills, experience_summary, linkedin, github, total_experience_years,
	current_position, availability, enhanced_from_extraction, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
ON CONFLICT (user_id) DO UPDATE SET
	full_name = EXCLUDED.full_name,
	phone = EXCLUDED.phone,
	bio = EXCLUDED.bio,
	location = EXCLUDED.location,
	job_title = EXCLUDED.job_title,
	company = EXCLUDED.company,
	website = EXCLUDED.website,
	skills = EXCLUDED.skills,
	experience_summary = EXCLUDED.experience_summary,
	linkedin = EXCLUDED.linkedin,
	github = EXCLUDED.github,
	total_experience_years = EXCLUDED.total_experience_years,
	current_position = EXCLUDED.current_position,
	availability = EXCLUDED.availability,
	enhanced_from_extraction = EXCLUDED.enhanced_from_extraction,
	updated_at = EXCLUDED.updated_at
`, p.UserID, p.FullName, p.Phone, p.Bio, p.Location, p.JobTitle, p.Company, p.Website,
		p.Skills, p.ExperienceSummary, p.LinkedIn, p.GitHub, p.TotalExperienceYears,
		p.CurrentRole, p.Availability, p.EnhancedFromExtraction, p.UpdatedAt)
	return err
}
