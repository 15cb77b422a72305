package repository

import (
	"context"
	"errors"

	"PhotoMarketAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PhotographerRepository struct {
	DB *pgxpool.Pool
}

func NewPhotographerRepository(db *pgxpool.Pool) *PhotographerRepository {
	return &PhotographerRepository{DB: db}
}

func (r *PhotographerRepository) GetByID(ctx context.Context, id int64) (*model.Photographer, error) {
	var p model.Photographer
	query := `SELECT photographerid, name, email, stripeaccountid, created_at, deleted_at FROM photographers WHERE photographerid=$1 AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&p.PhotographerID, &p.Name, &p.Email, &p.StripeAccountID, &p.CreatedAt, &p.DeletedAt); err != nil {
		return nil, errors.New("photographer not found")
	}
	return &p, nil
}

func (r *PhotographerRepository) GetAll(ctx context.Context) ([]model.Photographer, error) {
	query := `SELECT photographerid, name, email, stripeaccountid, created_at, deleted_at FROM photographers WHERE deleted_at IS NULL ORDER BY photographerid`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Photographer
	for rows.Next() {
		var p model.Photographer
		if err := rows.Scan(&p.PhotographerID, &p.Name, &p.Email, &p.StripeAccountID, &p.CreatedAt, &p.DeletedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}
