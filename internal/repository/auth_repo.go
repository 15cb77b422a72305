package repository

import (
	"context"
	"errors"
	"time"

	"PhotoMarketAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthRepository struct {
	DB *pgxpool.Pool
}

func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{DB: db}
}

// CreateBuyer inserts a new buyer account and returns the created buyerid
func (r *AuthRepository) CreateBuyer(ctx context.Context, email, passwordhash, role string) (int64, error) {
	var id int64
	query := `INSERT INTO buyers (email, passwordhash, role, created_at) VALUES ($1, $2, $3, $4) RETURNING buyerid`
	if err := r.DB.QueryRow(ctx, query, email, passwordhash, role, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AuthRepository) GetByEmail(ctx context.Context, email string) (*model.Buyer, error) {
	var b model.Buyer
	query := `SELECT buyerid, email, passwordhash, role, created_at, deleted_at
			FROM buyers
			WHERE email=$1 AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&b.BuyerID, &b.Email, &b.PasswordHash, &b.Role, &b.CreatedAt, &b.DeletedAt); err != nil {
		return nil, errors.New("buyer not found")
	}
	return &b, nil
}

func (r *AuthRepository) GetByID(ctx context.Context, id int64) (*model.Buyer, error) {
	var b model.Buyer
	query := `SELECT buyerid, email, role, created_at, deleted_at FROM buyers WHERE buyerid=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&b.BuyerID, &b.Email, &b.Role, &b.CreatedAt, &b.DeletedAt); err != nil {
		return nil, errors.New("buyer not found")
	}
	return &b, nil
}

func (r *AuthRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM buyers WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
