package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, file_name, file_type, full_name, email, phone, last_job, last_company, years_experience, technical_skills, education, summary, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, resume Resume) (Resume, error) {
	const query = `
INSERT INTO resumes (` + resumeColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
RETURNING ` + resumeColumns
	row := r.DB.QueryRowContext(ctx, query,
		resume.ID,
		resume.FileName,
		resume.FileType,
		nullable(resume.FullName),
		nullable(resume.Email),
		nullable(resume.Phone),
		nullable(resume.LastJob),
		nullable(resume.LastCompany),
		nullable(resume.YearsExperience),
		encodeSkills(resume.TechnicalSkills),
		nullable(resume.Education),
		nullable(resume.Summary),
	)
	return scanResume(row)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE id = $1
LIMIT 1`
	return scanResume(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Resume, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM resumes`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
SELECT ` + resumeColumns + `
FROM resumes
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, resume)
	}
	return out, total, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var (
		resume          Resume
		fullName        sql.NullString
		email           sql.NullString
		phone           sql.NullString
		lastJob         sql.NullString
		lastCompany     sql.NullString
		yearsExperience sql.NullString
		skillsRaw       []byte
		education       sql.NullString
		summary         sql.NullString
	)
	err := row.Scan(
		&resume.ID,
		&resume.FileName,
		&resume.FileType,
		&fullName,
		&email,
		&phone,
		&lastJob,
		&lastCompany,
		&yearsExperience,
		&skillsRaw,
		&education,
		&summary,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}

	resume.FullName = fullName.String
	resume.Email = email.String
	resume.Phone = phone.String
	resume.LastJob = lastJob.String
	resume.LastCompany = lastCompany.String
	resume.YearsExperience = yearsExperience.String
	resume.Education = education.String
	resume.Summary = summary.String
	resume.TechnicalSkills = decodeSkills(skillsRaw)
	return resume, nil
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func encodeSkills(skills []string) []byte {
	if skills == nil {
		skills = []string{}
	}
	data, err := json.Marshal(skills)
	if err != nil {
		return []byte("[]")
	}
	return data
}

func decodeSkills(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

var _ Repo = (*PGRepo)(nil)
