package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"warbler/internal/domain"
)

type LikeRepo struct {
	pool *pgxpool.Pool
}

func NewLikeRepo(pool *pgxpool.Pool) *LikeRepo {
	return &LikeRepo{pool: pool}
}

func (r *LikeRepo) Create(ctx context.Context, userID, messageID uuid.UUID) error {
	query := `
		INSERT INTO likes (user_id, message_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id, message_id) DO NOTHING`
	_, err := r.pool.Exec(ctx, query, userID, messageID)
	return err
}

func (r *LikeRepo) Delete(ctx context.Context, userID, messageID uuid.UUID) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND message_id = $2`
	_, err := r.pool.Exec(ctx, query, userID, messageID)
	return err
}

func (r *LikeRepo) Exists(ctx context.Context, userID, messageID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND message_id = $2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, messageID).Scan(&exists)
	return exists, err
}

func (r *LikeRepo) ListLikedBy(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	query := `
		SELECT m.id, m.user_id, m.text, m.created_at, u.username, u.image_url
		FROM messages m
		JOIN users u ON m.user_id = u.id
		JOIN likes l ON l.message_id = m.id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMessages(rows)
}

func (r *LikeRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM likes WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func (r *LikeRepo) CountByMessage(ctx context.Context, messageID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM likes WHERE message_id = $1`, messageID).Scan(&n)
	return n, err
}
