package parcel

import (
	sq "github.com/Masterminds/squirrel"
	"parcel-service/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var listColumns = []string{
	"p.id",
	"p.parcel_ref",
	"p.receive_date",
	"p.description",
	"p.pack",
	"p.weight",
	"p.length",
	"p.width",
	"p.height",
	"p.cbm",
	"p.freight",
	"p.estimate",
	"p.tracking",
	"p.th_tracking",
	"p.container_code",
	"p.estimated_date",
	"p.status",
	"p.customer_id",
	"c.customer_code",
	"cr.id",
	"cr.code",
	"cr.name",
	"p.created_at",
	"p.updated_at",
}

func selectParcels() sq.SelectBuilder {
	return qb.
		Select(listColumns...).
		From("parcels p").
		Join("customers c ON c.id = p.customer_id").
		LeftJoin("carriers cr ON cr.id = p.carrier_id")
}

// listPredicates собирает фильтры списка. Все условия комбинируются через AND.
func listPredicates(filter entities.ParcelFilter) []sq.Sqlizer {
	predicates := make([]sq.Sqlizer, 0, 4)

	if filter.CustomerCode != "" {
		predicates = append(predicates, sq.Eq{"c.customer_code": filter.CustomerCode})
	}

	if filter.Status != "" && filter.Status != entities.ParcelStatusAll {
		predicates = append(predicates, sq.Eq{"p.status": filter.Status.String()})
	}

	// обе границы независимы, открытый конец не ограничивается;
	// dateFrom > dateTo не валидируется, предикат уходит в БД как есть
	switch {
	case filter.DateFrom != nil && filter.DateTo != nil:
		predicates = append(predicates, sq.Expr("p.receive_date BETWEEN ? AND ?", *filter.DateFrom, *filter.DateTo))
	case filter.DateFrom != nil:
		predicates = append(predicates, sq.GtOrEq{"p.receive_date": *filter.DateFrom})
	case filter.DateTo != nil:
		predicates = append(predicates, sq.LtOrEq{"p.receive_date": *filter.DateTo})
	}

	if filter.TrackingNo != "" {
		pattern := "%" + filter.TrackingNo + "%"
		predicates = append(predicates, sq.Or{
			sq.ILike{"p.tracking": pattern},
			sq.ILike{"p.th_tracking": pattern},
			sq.ILike{"p.parcel_ref": pattern},
		})
	}

	return predicates
}

func buildListQuery(filter entities.ParcelFilter) (string, []interface{}, error) {
	builder := selectParcels()
	for _, predicate := range listPredicates(filter) {
		builder = builder.Where(predicate)
	}

	// порядок фиксированный, вызывающая сторона его не настраивает
	builder = builder.
		OrderBy("p.created_at DESC").
		Offset(uint64((filter.Page - 1) * filter.PageSize)).
		Limit(uint64(filter.PageSize))

	return builder.ToSql()
}

func buildCountQuery(filter entities.ParcelFilter) (string, []interface{}, error) {
	builder := qb.
		Select("COUNT(*)").
		From("parcels p").
		Join("customers c ON c.id = p.customer_id")
	for _, predicate := range listPredicates(filter) {
		builder = builder.Where(predicate)
	}

	return builder.ToSql()
}
