package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/models"
)

// CreateUser stores a new user. Emails are stored lowercased; the unique
// index on users.email (COLLATE NOCASE) rejects duplicates in any case
// variant.
func (r *SQLiteRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if u == nil {
		return 0, fmt.Errorf("user is nil")
	}

	ts := now()
	res, err := r.conn.Exec(ctx,
		`INSERT INTO users (name, email, password_hash, created, updated) VALUES (?, ?, ?, ?, ?)`,
		u.Name, strings.ToLower(u.Email), u.PasswordHash, ts, ts)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, created, updated FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *SQLiteRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, email, password_hash, created, updated FROM users WHERE email = ?`, strings.ToLower(email))
	return scanUser(row)
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Created, &u.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &u, nil
}

// AttachResult appends a result reference to the user's set. The composite
// primary key on user_results makes a duplicate attach a no-op.
func (r *SQLiteRepo) AttachResult(ctx context.Context, userID, resultID int64) error {
	_, err := r.conn.Exec(ctx,
		`INSERT OR IGNORE INTO user_results (user_id, result_id, created) VALUES (?, ?, ?)`,
		userID, resultID, now())
	return err
}

// ListResultsByUser returns the user's attached results, newest first.
func (r *SQLiteRepo) ListResultsByUser(ctx context.Context, userID int64) ([]models.Result, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT res.id, res.user_id, res.score, res.feedback, res.recommendation, res.request_id, res.created, res.updated
		 FROM results res
		 JOIN user_results ur ON ur.result_id = res.id
		 WHERE ur.user_id = ?
		 ORDER BY res.created DESC, res.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Result
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, rows.Err()
}
