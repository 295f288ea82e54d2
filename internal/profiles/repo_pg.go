package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const profileColumns = `id, user_id, file_name, storage_key, storage_url, organization_name, ein, mission_statement, year_founded, location_served, biggest_accomplishment, one_sentence_summary, legal_designation, primary_cause_areas, populations, geographical_focus, created_at, updated_at`

func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT ` + profileColumns + `
FROM profiles
WHERE user_id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Profile, error) {
	const query = `
SELECT ` + profileColumns + `
FROM profiles
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) Create(ctx context.Context, profile Profile) (Profile, error) {
	const query = `
INSERT INTO profiles (` + profileColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now())
RETURNING ` + profileColumns
	row := r.DB.QueryRowContext(ctx, query, r.writeArgs(profile)...)
	created, err := r.scanOne(row)
	if err != nil {
		if isUniqueViolation(err) {
			return Profile{}, ErrAlreadyExists
		}
		return Profile{}, err
	}
	return created, nil
}

// Upsert replaces the full profile row for the owning user, creating it if
// absent. Single statement so concurrent saves never produce duplicate rows.
func (r *PGRepo) Upsert(ctx context.Context, profile Profile) (Profile, error) {
	const query = `
INSERT INTO profiles (` + profileColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  file_name = EXCLUDED.file_name,
  storage_key = EXCLUDED.storage_key,
  storage_url = EXCLUDED.storage_url,
  organization_name = EXCLUDED.organization_name,
  ein = EXCLUDED.ein,
  mission_statement = EXCLUDED.mission_statement,
  year_founded = EXCLUDED.year_founded,
  location_served = EXCLUDED.location_served,
  biggest_accomplishment = EXCLUDED.biggest_accomplishment,
  one_sentence_summary = EXCLUDED.one_sentence_summary,
  legal_designation = EXCLUDED.legal_designation,
  primary_cause_areas = EXCLUDED.primary_cause_areas,
  populations = EXCLUDED.populations,
  geographical_focus = EXCLUDED.geographical_focus,
  updated_at = now()
RETURNING ` + profileColumns
	row := r.DB.QueryRowContext(ctx, query, r.writeArgs(profile)...)
	return r.scanOne(row)
}

// UpsertFileReference updates only the file reference triple, leaving every
// other profile column untouched; an absent row is created with null data
// fields.
func (r *PGRepo) UpsertFileReference(ctx context.Context, candidateID, userID, fileName, storageKey, storageURL string) (Profile, error) {
	const query = `
INSERT INTO profiles (id, user_id, file_name, storage_key, storage_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  file_name = EXCLUDED.file_name,
  storage_key = EXCLUDED.storage_key,
  storage_url = EXCLUDED.storage_url,
  updated_at = now()
RETURNING ` + profileColumns
	row := r.DB.QueryRowContext(ctx, query, candidateID, userID, fileName, storageKey, storageURL)
	return r.scanOne(row)
}

func (r *PGRepo) DeleteByUser(ctx context.Context, userID string) error {
	const query = `DELETE FROM profiles WHERE user_id = $1`
	res, err := r.DB.ExecContext(ctx, query, userID)
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

func (r *PGRepo) ListForSwipe(ctx context.Context, excludeUserID string) ([]Profile, error) {
	const query = `
SELECT ` + profileColumns + `
FROM profiles
WHERE user_id <> $1
  AND organization_name IS NOT NULL
  AND organization_name <> ''
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, excludeUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		profile, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, profile)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (Profile, error) {
	var (
		p                 Profile
		fileName          sql.NullString
		storageKey        sql.NullString
		storageURL        sql.NullString
		orgName           sql.NullString
		ein               sql.NullString
		mission           sql.NullString
		yearFounded       sql.NullString
		locationServed    sql.NullString
		accomplishment    sql.NullString
		summary           sql.NullString
		legalDesignation  sql.NullString
		causeAreasRaw     []byte
		populationsRaw    []byte
		geographicalFocus sql.NullString
	)
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&fileName,
		&storageKey,
		&storageURL,
		&orgName,
		&ein,
		&mission,
		&yearFounded,
		&locationServed,
		&accomplishment,
		&summary,
		&legalDesignation,
		&causeAreasRaw,
		&populationsRaw,
		&geographicalFocus,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}

	p.FileName = fileName.String
	p.StorageKey = storageKey.String
	p.StorageURL = storageURL.String
	p.OrganizationName = orgName.String
	p.EIN = ein.String
	p.MissionStatement = mission.String
	p.YearFounded = yearFounded.String
	p.LocationServed = locationServed.String
	p.BiggestAccomplishment = accomplishment.String
	p.OneSentenceSummary = summary.String
	p.LegalDesignation = legalDesignation.String
	p.GeographicalFocus = geographicalFocus.String
	p.PrimaryCauseAreas = decodeJSONArray(causeAreasRaw)
	p.Populations = decodeJSONArray(populationsRaw)
	return p, nil
}

func (r *PGRepo) writeArgs(p Profile) []any {
	return []any{
		p.ID,
		p.UserID,
		nullableString(p.FileName),
		nullableString(p.StorageKey),
		nullableString(p.StorageURL),
		nullableString(p.OrganizationName),
		nullableString(p.EIN),
		nullableString(p.MissionStatement),
		nullableString(p.YearFounded),
		nullableString(p.LocationServed),
		nullableString(p.BiggestAccomplishment),
		nullableString(p.OneSentenceSummary),
		nullableString(p.LegalDesignation),
		encodeJSONArray(p.PrimaryCauseAreas),
		encodeJSONArray(p.Populations),
		nullableString(p.GeographicalFocus),
	}
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func encodeJSONArray(values []string) []byte {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return []byte("[]")
	}
	return data
}

func decodeJSONArray(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ Repo = (*PGRepo)(nil)
