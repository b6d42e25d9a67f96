package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/models"
)

const interviewColumns = `id, owner_id, title, type, job_role, difficulty, key_skills, duration_minutes, description, visibility, created, updated`

func (r *SQLiteRepo) CreateInterview(ctx context.Context, iv *models.Interview) (int64, error) {
	if iv == nil {
		return 0, fmt.Errorf("interview is nil")
	}
	if iv.Visibility == "" {
		iv.Visibility = models.VisibilityPrivate
	}

	ts := now()
	res, err := r.conn.Exec(ctx,
		`INSERT INTO interviews (owner_id, title, type, job_role, difficulty, key_skills, duration_minutes, description, visibility, created, updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		iv.OwnerID, iv.Title, iv.Type, iv.JobRole, iv.Difficulty, iv.KeySkills, iv.DurationMinutes, iv.Description, iv.Visibility, ts, ts)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// GetVisible returns the interview when the requester owns it or it is
// Public. A private interview of another owner scans as absent, so the caller
// cannot tell not-owned from nonexistent.
func (r *SQLiteRepo) GetVisible(ctx context.Context, id, requesterID int64) (*models.Interview, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE id = ? AND (owner_id = ? OR visibility = ?)`,
		id, requesterID, models.VisibilityPublic)

	var iv models.Interview
	if err := scanInterview(row.Scan, &iv); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &iv, nil
}

// ListVisible returns the union of the requester's own interviews and all
// Public ones. A single predicate keeps the set free of duplicates.
func (r *SQLiteRepo) ListVisible(ctx context.Context, requesterID int64) ([]models.Interview, error) {
	return r.listInterviews(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE owner_id = ? OR visibility = ? ORDER BY id`,
		requesterID, models.VisibilityPublic)
}

func (r *SQLiteRepo) ListPublic(ctx context.Context) ([]models.Interview, error) {
	return r.listInterviews(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE visibility = ? ORDER BY id`,
		models.VisibilityPublic)
}

func (r *SQLiteRepo) listInterviews(ctx context.Context, query string, args ...any) ([]models.Interview, error) {
	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Interview
	for rows.Next() {
		var iv models.Interview
		if err := scanInterview(rows.Scan, &iv); err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}

// UpdateInterview applies the non-nil fields of details to the requester's
// own interview. An ownership mismatch reports the same outcome as a missing
// row: (nil, nil).
func (r *SQLiteRepo) UpdateInterview(ctx context.Context, id, ownerID int64, details *models.InterviewDetails) (*models.Interview, error) {
	if details == nil {
		return nil, fmt.Errorf("details is nil")
	}

	sets := make([]string, 0, 8)
	args := make([]any, 0, 10)
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if details.Title != nil {
		add("title", *details.Title)
	}
	if details.Type != nil {
		add("type", *details.Type)
	}
	if details.JobRole != nil {
		add("job_role", *details.JobRole)
	}
	if details.Difficulty != nil {
		add("difficulty", *details.Difficulty)
	}
	if details.KeySkills != nil {
		add("key_skills", *details.KeySkills)
	}
	if details.DurationMinutes != nil {
		add("duration_minutes", *details.DurationMinutes)
	}
	if details.Description != nil {
		add("description", *details.Description)
	}
	add("updated", now())

	query := `UPDATE interviews SET `
	for i, s := range sets {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += ` WHERE id = ? AND owner_id = ?`
	args = append(args, id, ownerID)

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	row := r.conn.QueryRow(ctx, `SELECT `+interviewColumns+` FROM interviews WHERE id = ?`, id)
	var iv models.Interview
	if err := scanInterview(row.Scan, &iv); err != nil {
		return nil, err
	}
	return &iv, nil
}

// DeleteInterview removes the requester's own interview; false when no owned
// row matched.
func (r *SQLiteRepo) DeleteInterview(ctx context.Context, id, ownerID int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM interviews WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanInterview(scan func(dest ...any) error, iv *models.Interview) error {
	return scan(&iv.ID, &iv.OwnerID, &iv.Title, &iv.Type, &iv.JobRole, &iv.Difficulty,
		&iv.KeySkills, &iv.DurationMinutes, &iv.Description, &iv.Visibility, &iv.Created, &iv.Updated)
}
