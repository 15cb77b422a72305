package repository

import (
	"context"
	"errors"

	"PhotoMarketAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PricingPackageRepository struct {
	DB *pgxpool.Pool
}

func NewPricingPackageRepository(db *pgxpool.Pool) *PricingPackageRepository {
	return &PricingPackageRepository{DB: db}
}

func (r *PricingPackageRepository) GetByID(ctx context.Context, id int64) (*model.PricingPackage, error) {
	var p model.PricingPackage
	query := `
		SELECT packageid, albumid, name, description, packagetype
		FROM pricingpackages
		WHERE packageid=$1 AND deleted_at IS NULL
	`
	if err := r.DB.
		QueryRow(ctx, query, id).
		Scan(&p.PackageID, &p.AlbumID, &p.Name, &p.Description, &p.PackageType); err != nil {
		return nil, errors.New("pricing package not found")
	}

	tiers, err := r.loadTiers(ctx, p.PackageID)
	if err != nil {
		return nil, err
	}
	p.Tiers = tiers
	return &p, nil
}

// ListByAlbum returns the album's packages with their tier schedules.
func (r *PricingPackageRepository) ListByAlbum(ctx context.Context, albumID int64) ([]model.PricingPackage, error) {
	query := `SELECT packageid, albumid, name, description, packagetype FROM pricingpackages WHERE albumid=$1 AND deleted_at IS NULL ORDER BY packageid`
	rows, err := r.DB.Query(ctx, query, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.PricingPackage
	for rows.Next() {
		var p model.PricingPackage
		if err := rows.Scan(&p.PackageID, &p.AlbumID, &p.Name, &p.Description, &p.PackageType); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	rows.Close()

	for i := range list {
		tiers, err := r.loadTiers(ctx, list[i].PackageID)
		if err != nil {
			return nil, err
		}
		list[i].Tiers = tiers
	}
	return list, nil
}

func (r *PricingPackageRepository) loadTiers(ctx context.Context, packageID int64) ([]model.PriceTier, error) {
	query := `SELECT quantity, unitprice_cents FROM pricetiers WHERE packageid=$1 ORDER BY quantity`
	rows, err := r.DB.Query(ctx, query, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []model.PriceTier
	for rows.Next() {
		var t model.PriceTier
		if err := rows.Scan(&t.Quantity, &t.UnitPriceCents); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, nil
}
