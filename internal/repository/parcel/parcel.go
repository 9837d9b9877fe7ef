package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	"parcel-service/internal/service/parcel"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// scanTargets указатели на поля в порядке listColumns.
func (p *ParcelDB) scanTargets() []interface{} {
	return []interface{}{
		&p.ID,
		&p.ParcelRef,
		&p.ReceiveDate,
		&p.Description,
		&p.Pack,
		&p.Weight,
		&p.Length,
		&p.Width,
		&p.Height,
		&p.Cbm,
		&p.Freight,
		&p.Estimate,
		&p.Tracking,
		&p.ThTracking,
		&p.ContainerCode,
		&p.EstimatedDate,
		&p.Status,
		&p.CustomerID,
		&p.CustomerCode,
		&p.CarrierID,
		&p.CarrierCode,
		&p.CarrierName,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}

func (r *Repository) List(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, int64, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, filter.PageSize)
	for rows.Next() {
		var parcelModel ParcelDB
		err := rows.Scan(parcelModel.scanTargets()...)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected parcel repository list error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	countQuery, countArgs, err := buildCountQuery(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected parcel repository count error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected parcel repository count error: %w", err)
	}

	return ToDomainList(parcelModels), total, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Parcel, error) {
	query, args, err := selectParcels().
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	var parcelModel ParcelDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(parcelModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (string, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	query := `INSERT INTO parcels (
			id, parcel_ref, receive_date, description, pack,
			weight, length, width, height, cbm, freight, estimate,
			tracking, th_tracking, container_code, estimated_date,
			status, customer_id, carrier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		parcelModifyModel.ParcelRef,
		parcelModifyModel.ReceiveDate,
		parcelModifyModel.Description,
		parcelModifyModel.Pack,
		parcelModifyModel.Weight,
		parcelModifyModel.Length,
		parcelModifyModel.Width,
		parcelModifyModel.Height,
		parcelModifyModel.Cbm,
		parcelModifyModel.Freight,
		parcelModifyModel.Estimate,
		parcelModifyModel.Tracking,
		parcelModifyModel.ThTracking,
		parcelModifyModel.ContainerCode,
		parcelModifyModel.EstimatedDate,
		parcelModifyModel.Status,
		parcelModifyModel.CustomerID,
		parcelModifyModel.CarrierID,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", parcel.ErrConflict
		}
		return "", fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) error {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	builder := qb.
		Update("parcels")

	// опциональные поля
	if parcelModifyModel.ParcelRef != nil {
		builder = builder.Set("parcel_ref", parcelModifyModel.ParcelRef)
	}
	if parcelModifyModel.ReceiveDate != nil {
		builder = builder.Set("receive_date", parcelModifyModel.ReceiveDate)
	}
	if parcelModifyModel.Description != nil {
		builder = builder.Set("description", parcelModifyModel.Description)
	}
	if parcelModifyModel.Pack != nil {
		builder = builder.Set("pack", parcelModifyModel.Pack)
	}
	if parcelModifyModel.Weight != nil {
		builder = builder.Set("weight", parcelModifyModel.Weight)
	}
	if parcelModifyModel.Length != nil {
		builder = builder.Set("length", parcelModifyModel.Length)
	}
	if parcelModifyModel.Width != nil {
		builder = builder.Set("width", parcelModifyModel.Width)
	}
	if parcelModifyModel.Height != nil {
		builder = builder.Set("height", parcelModifyModel.Height)
	}
	if parcelModifyModel.Cbm != nil {
		builder = builder.Set("cbm", parcelModifyModel.Cbm)
	}
	if parcelModifyModel.Freight != nil {
		builder = builder.Set("freight", parcelModifyModel.Freight)
	}
	if parcelModifyModel.Estimate != nil {
		builder = builder.Set("estimate", parcelModifyModel.Estimate)
	}
	if parcelModifyModel.Tracking != nil {
		builder = builder.Set("tracking", parcelModifyModel.Tracking)
	}
	if parcelModifyModel.ThTracking != nil {
		builder = builder.Set("th_tracking", parcelModifyModel.ThTracking)
	}
	if parcelModifyModel.ContainerCode != nil {
		builder = builder.Set("container_code", parcelModifyModel.ContainerCode)
	}
	if parcelModifyModel.EstimatedDate != nil {
		builder = builder.Set("estimated_date", parcelModifyModel.EstimatedDate)
	}
	if parcelModifyModel.Status != nil {
		builder = builder.Set("status", parcelModifyModel.Status)
	}
	if parcelModifyModel.CarrierID != nil {
		builder = builder.Set("carrier_id", parcelModifyModel.CarrierID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	query, args, err := builder.
		Where(sq.Eq{"id": parcelModifyModel.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return parcel.ErrConflict
		}
		return fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return parcel.ErrParcelNotFound
	}

	return nil
}

// UpdateStatus безусловная запись статуса: переходы не ограничены,
// побеждает последняя запись.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status entities.ParcelStatusType) error {
	query := `UPDATE parcels
		SET status = $1, updated_at = NOW()
		WHERE id = $2`

	result, err := r.querier.Exec(ctx, query, status.String(), id)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return parcel.ErrParcelNotFound
	}

	return nil
}

func (r *Repository) CountOverdue(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*)
		FROM parcels
		WHERE status = 'shipped'
		  AND estimated_date IS NOT NULL
		  AND estimated_date < NOW()`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository count overdue error: %w", err)
	}

	return count, nil
}
