package models

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// unique_violation
const pqUniqueViolation = "23505"

type sqlSubscriberRepo struct{ db *sql.DB }

func NewSQLSubscriberRepository(db *sql.DB) SubscriberRepository {
	return &sqlSubscriberRepo{db}
}

func (r *sqlSubscriberRepo) Create(ctx context.Context, s *Subscriber) error {
	// UNIQUE(email) rejects duplicates
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subscribers(id, email, created_at) VALUES ($1,$2,$3)`,
		s.ID, s.Email, s.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ErrAlreadySubscribed
	}
	return err
}

func (r *sqlSubscriberRepo) GetByEmail(ctx context.Context, email string) (Subscriber, error) {
	var s Subscriber
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, created_at FROM subscribers WHERE email=$1`, email).
		Scan(&s.ID, &s.Email, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Subscriber{}, ErrNotFound
	}
	if err != nil {
		return Subscriber{}, err
	}
	return s, nil
}

func (r *sqlSubscriberRepo) Delete(ctx context.Context, email string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscribers WHERE email=$1`, email)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqlSubscriberRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&n)
	return n, err
}
