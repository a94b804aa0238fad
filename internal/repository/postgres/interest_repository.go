package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

type interestRepository struct {
	db *sqlx.DB
}

func NewInterestRepository(db *sqlx.DB) repository.InterestRepository {
	return &interestRepository{db: db}
}

func (r *interestRepository) Create(ctx context.Context, interest *domain.Interest) error {
	query := `
		INSERT INTO interests (sender_id, receiver_id, status, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, sent_at
	`
	err := r.db.QueryRowContext(ctx, query,
		interest.SenderID, interest.ReceiverID, interest.Status, interest.Message,
	).Scan(&interest.ID, &interest.SentAt)
	if isUniqueViolation(err) {
		return domain.ErrInterestExists
	}
	return err
}

func (r *interestRepository) GetByID(ctx context.Context, id int) (*domain.Interest, error) {
	var interest domain.Interest
	query := `SELECT * FROM interests WHERE id = $1`
	err := r.db.GetContext(ctx, &interest, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInterestNotFound
		}
		return nil, err
	}
	return &interest, nil
}

func (r *interestRepository) GetByPair(ctx context.Context, senderID, receiverID int) (*domain.Interest, error) {
	var interest domain.Interest
	query := `SELECT * FROM interests WHERE sender_id = $1 AND receiver_id = $2`
	err := r.db.GetContext(ctx, &interest, query, senderID, receiverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInterestNotFound
		}
		return nil, err
	}
	return &interest, nil
}

// UpdateStatus transitions a pending interest to a terminal status. The
// status = 'pending' guard makes the transition race-safe: a concurrent
// second response finds zero rows.
func (r *interestRepository) UpdateStatus(ctx context.Context, id int, status string, respondedAt time.Time) error {
	query := `
		UPDATE interests
		SET status = $1, responded_at = $2
		WHERE id = $3 AND status = 'pending'
	`
	result, err := r.db.ExecContext(ctx, query, status, respondedAt, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInterestResponded
	}
	return nil
}

func (r *interestRepository) ListBySender(ctx context.Context, senderID int, status string, limit, offset int) ([]*domain.Interest, error) {
	return r.list(ctx, "sender_id", senderID, status, limit, offset)
}

func (r *interestRepository) ListByReceiver(ctx context.Context, receiverID int, status string, limit, offset int) ([]*domain.Interest, error) {
	return r.list(ctx, "receiver_id", receiverID, status, limit, offset)
}

func (r *interestRepository) list(ctx context.Context, column string, userID int, status string, limit, offset int) ([]*domain.Interest, error) {
	query := fmt.Sprintf(`SELECT * FROM interests WHERE %s = $1`, column)
	args := []interface{}{userID}
	argCount := 2

	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argCount)
		args = append(args, status)
		argCount++
	}

	query += fmt.Sprintf(" ORDER BY sent_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1)
	args = append(args, limit, offset)

	interests := []*domain.Interest{}
	err := r.db.SelectContext(ctx, &interests, query, args...)
	return interests, err
}

func (r *interestRepository) HasAcceptedBetween(ctx context.Context, userA, userB int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM interests
			WHERE status = 'accepted'
			  AND ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
		)
	`
	err := r.db.GetContext(ctx, &exists, query, userA, userB)
	return exists, err
}
