// Package postgres holds the relational archive of terminal service
// requests, kept for reporting after the live records age out of the
// realtime store.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/repository"
)

type archiveRepository struct {
	db *sql.DB
}

func NewArchiveRepository(db *sql.DB) repository.ArchiveRepository {
	return &archiveRepository{db: db}
}

func (r *archiveRepository) ArchiveRequest(ctx context.Context, req *domain.ServiceRequest) error {
	query := `INSERT INTO archived_requests
	          (request_id, service_id, service_name, price_per_kg, user_id, user_name, user_email, user_phone,
	           weight, total_price, status, pickup_address, delivery_address, cargo_type, transport_mode,
	           created_at, archived_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	          ON CONFLICT (request_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.ServiceID, req.ServiceName, req.PricePerKg, req.UserID, req.UserName, req.UserEmail, req.UserPhone,
		req.Weight, req.TotalPrice, string(req.Status), req.PickupAddress, req.DeliveryAddress, req.CargoType, req.TransportMode,
		time.UnixMilli(req.CreatedAt), time.Now(),
	)
	return err
}

func (r *archiveRepository) CountArchived(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM archived_requests`).Scan(&count)
	return count, err
}
