package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"warbler/internal/domain"
)

const messageSelect = `
	SELECT m.id, m.user_id, m.text, m.created_at, u.username, u.image_url
	FROM messages m
	JOIN users u ON m.user_id = u.id`

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

func (r *MessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query, msg.ID, msg.UserID, msg.Text, msg.CreatedAt)
	return err
}

func (r *MessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	var m domain.Message
	err := r.pool.QueryRow(ctx, messageSelect+" WHERE m.id = $1", id).Scan(
		&m.ID, &m.UserID, &m.Text, &m.CreatedAt, &m.AuthorUsername, &m.AuthorImageURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Message, error) {
	query := messageSelect + `
		WHERE m.user_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMessages(rows)
}

// ListTimeline returns the user's own messages plus those of everyone they
// follow, newest first.
func (r *MessageRepo) ListTimeline(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Message, error) {
	query := messageSelect + `
		WHERE m.user_id = $1
			OR m.user_id IN (SELECT followed_id FROM follows WHERE follower_id = $1)
		ORDER BY m.created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMessages(rows)
}

func (r *MessageRepo) ListRecent(ctx context.Context, limit int) ([]domain.Message, error) {
	query := messageSelect + `
		ORDER BY m.created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMessages(rows)
}

func (r *MessageRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM messages WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

// Delete removes the message; its like edges cascade.
func (r *MessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	return err
}

func collectMessages(rows pgx.Rows) ([]domain.Message, error) {
	var msgs []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Text, &m.CreatedAt, &m.AuthorUsername, &m.AuthorImageURL,
		); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
