package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/models"
	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/repository"
)

// CreateResultForUser stores a result and links it to its user in one
// transaction. The link-up can only fail when the user is missing, in which
// case the whole write rolls back and repository.ErrUserNotFound is returned:
// no orphaned result row survives.
func (r *SQLiteRepo) CreateResultForUser(ctx context.Context, res *models.Result) (*models.Result, error) {
	if res == nil {
		return nil, fmt.Errorf("result is nil")
	}
	if res.Recommendation == "" {
		res.Recommendation = "N/A"
	}

	// Idempotent retry: a request id we already stored wins over a second
	// insert.
	if res.RequestID != "" {
		existing, err := r.GetResultByRequestID(ctx, res.RequestID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	var out *models.Result
	err := r.conn.WithTx(ctx, func(tx *sql.Tx) error {
		var userID int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE id = ?`, res.UserID).Scan(&userID)
		if err == sql.ErrNoRows {
			return repository.ErrUserNotFound
		}
		if err != nil {
			return err
		}

		ts := now()
		var reqID any
		if res.RequestID != "" {
			reqID = res.RequestID
		}
		ins, err := tx.ExecContext(ctx,
			`INSERT INTO results (user_id, score, feedback, recommendation, request_id, created, updated) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			res.UserID, res.Score, res.Feedback, res.Recommendation, reqID, ts, ts)
		if err != nil {
			return err
		}
		id, err := ins.LastInsertId()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO user_results (user_id, result_id, created) VALUES (?, ?, ?)`,
			res.UserID, id, ts); err != nil {
			return err
		}

		stored := *res
		stored.ID = id
		stored.Created = ts
		stored.Updated = ts
		out = &stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *SQLiteRepo) GetResultByRequestID(ctx context.Context, requestID string) (*models.Result, error) {
	if requestID == "" {
		return nil, nil
	}
	row := r.conn.QueryRow(ctx,
		`SELECT id, user_id, score, feedback, recommendation, request_id, created, updated FROM results WHERE request_id = ?`,
		requestID)

	res, err := scanResultRow(row)
	if err != nil {
		return nil, err
	}
	return res, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(s scanner) (*models.Result, error) {
	var res models.Result
	var reqID sql.NullString
	if err := s.Scan(&res.ID, &res.UserID, &res.Score, &res.Feedback, &res.Recommendation, &reqID, &res.Created, &res.Updated); err != nil {
		return nil, err
	}
	if reqID.Valid {
		res.RequestID = reqID.String
	}
	return &res, nil
}

func scanResultRow(row *sql.Row) (*models.Result, error) {
	res, err := scanResult(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	return res, nil
}
