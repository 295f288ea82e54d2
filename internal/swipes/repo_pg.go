package swipes

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

const swipeColumns = `id, user_id, profile_id, action, created_at, updated_at`

// Upsert records the decision, overwriting any earlier decision by the same
// user on the same profile.
func (r *PGRepo) Upsert(ctx context.Context, swipe Swipe) (Swipe, error) {
	const query = `
INSERT INTO swipes (id, user_id, profile_id, action, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
ON CONFLICT (user_id, profile_id) DO UPDATE SET
  action = EXCLUDED.action,
  updated_at = now()
RETURNING ` + swipeColumns
	row := r.DB.QueryRowContext(ctx, query, swipe.ID, swipe.UserID, swipe.ProfileID, swipe.Action)
	return scanSwipe(row)
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Swipe, error) {
	const query = `
SELECT ` + swipeColumns + `
FROM swipes
WHERE user_id = $1
ORDER BY updated_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Swipe
	for rows.Next() {
		swipe, err := scanSwipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, swipe)
	}
	return out, rows.Err()
}

func (r *PGRepo) Get(ctx context.Context, userID, profileID string) (Swipe, error) {
	const query = `
SELECT ` + swipeColumns + `
FROM swipes
WHERE user_id = $1 AND profile_id = $2
LIMIT 1`
	return scanSwipe(r.DB.QueryRowContext(ctx, query, userID, profileID))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSwipe(row rowScanner) (Swipe, error) {
	var s Swipe
	err := row.Scan(&s.ID, &s.UserID, &s.ProfileID, &s.Action, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Swipe{}, ErrNotFound
		}
		return Swipe{}, err
	}
	return s, nil
}

var _ Repo = (*PGRepo)(nil)
