package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"warbler/internal/domain"
)

const followedUserColumns = "u.id, u.username, u.email, u.password_hash, u.image_url, u.header_image_url, u.bio, u.location, u.created_at"

type FollowRepo struct {
	pool *pgxpool.Pool
}

func NewFollowRepo(pool *pgxpool.Pool) *FollowRepo {
	return &FollowRepo{pool: pool}
}

// Create inserts the edge; an already-present pair is left untouched so the
// operation stays idempotent under concurrent requests.
func (r *FollowRepo) Create(ctx context.Context, followedID, followerID uuid.UUID) error {
	query := `
		INSERT INTO follows (followed_id, follower_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (followed_id, follower_id) DO NOTHING`
	_, err := r.pool.Exec(ctx, query, followedID, followerID)
	return err
}

func (r *FollowRepo) Delete(ctx context.Context, followedID, followerID uuid.UUID) error {
	query := `DELETE FROM follows WHERE followed_id = $1 AND follower_id = $2`
	_, err := r.pool.Exec(ctx, query, followedID, followerID)
	return err
}

func (r *FollowRepo) Exists(ctx context.Context, followedID, followerID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM follows WHERE followed_id = $1 AND follower_id = $2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, followedID, followerID).Scan(&exists)
	return exists, err
}

func (r *FollowRepo) ListFollowing(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	query := `
		SELECT ` + followedUserColumns + `
		FROM users u
		JOIN follows f ON f.followed_id = u.id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *FollowRepo) ListFollowers(ctx context.Context, userID uuid.UUID) ([]domain.User, error) {
	query := `
		SELECT ` + followedUserColumns + `
		FROM users u
		JOIN follows f ON f.follower_id = u.id
		WHERE f.followed_id = $1
		ORDER BY f.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *FollowRepo) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM follows WHERE follower_id = $1`, userID).Scan(&n)
	return n, err
}

func (r *FollowRepo) CountFollowers(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM follows WHERE followed_id = $1`, userID).Scan(&n)
	return n, err
}
