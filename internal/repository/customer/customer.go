package customer

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	"parcel-service/internal/service/customer"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const customerColumns = `id, customer_code, email, name, phone, password_hash, role, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (c *CustomerDB) scanTargets() []interface{} {
	return []interface{}{
		&c.ID,
		&c.CustomerCode,
		&c.Email,
		&c.Name,
		&c.Phone,
		&c.PasswordHash,
		&c.Role,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

func (r *Repository) Create(ctx context.Context, customerModifyEntity entities.CustomerModify, passwordHash string) (string, error) {
	query := `INSERT INTO customers (id, customer_code, email, name, phone, password_hash, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var role, status *string
	if customerModifyEntity.Role != nil {
		value := customerModifyEntity.Role.String()
		role = &value
	}
	if customerModifyEntity.Status != nil {
		value := customerModifyEntity.Status.String()
		status = &value
	}

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		customerModifyEntity.CustomerCode,
		customerModifyEntity.Email,
		customerModifyEntity.Name,
		customerModifyEntity.Phone,
		passwordHash,
		role,
		status,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", customer.ErrConflict
		}
		return "", fmt.Errorf("unexpected customer repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM customers
		WHERE id = $1`

	var customerModel CustomerDB
	err := r.querier.QueryRow(ctx, query, id).Scan(customerModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected customer repository getbyid error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) GetByCode(ctx context.Context, customerCode string) (*entities.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM customers
		WHERE customer_code = $1`

	var customerModel CustomerDB
	err := r.querier.QueryRow(ctx, query, customerCode).Scan(customerModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected customer repository getbycode error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.CustomerFilter) ([]entities.Customer, int64, error) {
	predicates := make([]sq.Sqlizer, 0, 2)
	if filter.Status != "" {
		predicates = append(predicates, sq.Eq{"status": filter.Status.String()})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		predicates = append(predicates, sq.Or{
			sq.ILike{"customer_code": pattern},
			sq.ILike{"name": pattern},
			sq.ILike{"email": pattern},
		})
	}

	builder := qb.
		Select(
			"id", "customer_code", "email", "name", "phone",
			"password_hash", "role", "status", "created_at", "updated_at",
		).
		From("customers")
	for _, predicate := range predicates {
		builder = builder.Where(predicate)
	}
	builder = builder.
		OrderBy("created_at DESC").
		Offset(uint64((filter.Page - 1) * filter.PageSize)).
		Limit(uint64(filter.PageSize))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected customer repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected customer repository list error: %w", err)
	}
	defer rows.Close()

	customerModels := make([]CustomerDB, 0, filter.PageSize)
	for rows.Next() {
		var customerModel CustomerDB
		err := rows.Scan(customerModel.scanTargets()...)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected customer repository list error: %w", err)
		}
		customerModels = append(customerModels, customerModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected customer repository list error: %w", err)
	}

	countBuilder := qb.
		Select("COUNT(*)").
		From("customers")
	for _, predicate := range predicates {
		countBuilder = countBuilder.Where(predicate)
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected customer repository count error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected customer repository count error: %w", err)
	}

	return ToDomainList(customerModels), total, nil
}

func (r *Repository) Update(ctx context.Context, customerModifyEntity entities.CustomerModify, passwordHash *string) (*entities.Customer, error) {
	builder := qb.
		Update("customers")

	// опциональные поля
	if customerModifyEntity.CustomerCode != nil {
		builder = builder.Set("customer_code", customerModifyEntity.CustomerCode)
	}
	if customerModifyEntity.Email != nil {
		builder = builder.Set("email", customerModifyEntity.Email)
	}
	if customerModifyEntity.Name != nil {
		builder = builder.Set("name", customerModifyEntity.Name)
	}
	if customerModifyEntity.Phone != nil {
		builder = builder.Set("phone", customerModifyEntity.Phone)
	}
	if passwordHash != nil {
		builder = builder.Set("password_hash", passwordHash)
	}
	if customerModifyEntity.Role != nil {
		builder = builder.Set("role", customerModifyEntity.Role.String())
	}
	if customerModifyEntity.Status != nil {
		builder = builder.Set("status", customerModifyEntity.Status.String())
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	query, args, err := builder.
		Where(sq.Eq{"id": customerModifyEntity.ID}).
		Suffix("RETURNING " + customerColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	var customerModel CustomerDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(customerModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, customer.ErrConflict
		}

		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	return ToDomain(&customerModel), nil
}
