package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Parcel struct {
	ID            string
	ParcelRef     string
	ReceiveDate   time.Time
	Description   string
	Pack          string
	Weight        decimal.Decimal
	Length        decimal.Decimal
	Width         decimal.Decimal
	Height        decimal.Decimal
	Cbm           decimal.Decimal
	Freight       decimal.Decimal
	Estimate      decimal.Decimal
	Tracking      *string
	ThTracking    *string
	ContainerCode *string
	EstimatedDate *time.Time
	Status        ParcelStatusType
	CustomerID    string
	CustomerCode  string
	Carrier       *Carrier
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ParcelStatusType string

const (
	ParcelPending   ParcelStatusType = "pending"
	ParcelShipped   ParcelStatusType = "shipped"
	ParcelDelivered ParcelStatusType = "delivered"
	ParcelCancelled ParcelStatusType = "cancelled"
)

// ParcelStatusAll специальное значение фильтра, отключающее фильтрацию по статусу.
const ParcelStatusAll ParcelStatusType = "all"

func (t ParcelStatusType) String() string {
	return string(t)
}

// operationalStatusAliases операционные метки админ-консоли поверх базового
// перечисления статусов. Таблица неизменяемая, загружается один раз.
var operationalStatusAliases = map[string]ParcelStatusType{
	"warehouse_pending":         ParcelPending,
	"arrived_cn_warehouse":      ParcelPending,
	"container_closed":          ParcelShipped,
	"ready_to_ship_to_customer": ParcelShipped,
	"arrived_th_warehouse":      ParcelShipped,
	"shipped_to_customer":       ParcelShipped,
	"delivered_to_customer":     ParcelDelivered,
}

// NormalizeParcelStatus приводит метку статуса к базовому перечислению.
// Принимает как базовые значения, так и операционные алиасы консоли.
func NormalizeParcelStatus(label string) (ParcelStatusType, bool) {
	switch ParcelStatusType(label) {
	case ParcelPending, ParcelShipped, ParcelDelivered, ParcelCancelled:
		return ParcelStatusType(label), true
	}

	status, ok := operationalStatusAliases[label]
	return status, ok
}

type ParcelModify struct {
	ID            *string
	ParcelRef     *string
	ReceiveDate   *time.Time
	Description   *string
	Pack          *string
	Weight        *decimal.Decimal
	Length        *decimal.Decimal
	Width         *decimal.Decimal
	Height        *decimal.Decimal
	Cbm           *decimal.Decimal
	Freight       *decimal.Decimal
	Estimate      *decimal.Decimal
	Tracking      *string
	ThTracking    *string
	ContainerCode *string
	EstimatedDate *time.Time
	Status        *ParcelStatusType
	CustomerID    *string
	CustomerCode  *string
	CarrierID     *int64
}

// ParcelFilter набор ограничений списка посылок. Живет только в рамках запроса,
// никогда не сохраняется.
type ParcelFilter struct {
	Page         int
	PageSize     int
	Status       ParcelStatusType
	TrackingNo   string
	DateFrom     *time.Time
	DateTo       *time.Time
	CustomerCode string
}

type ParcelPage struct {
	Parcels []Parcel
	Total   int64
}

// ParcelStatusChange событие смены статуса для уведомлений.
type ParcelStatusChange struct {
	ParcelID     string
	ParcelRef    string
	CustomerCode string
	OldStatus    ParcelStatusType
	NewStatus    ParcelStatusType
	ChangedAt    time.Time
}
