package parcel

import (
	"time"

	"github.com/shopspring/decimal"
)

type ParcelDB struct {
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
	Status        string
	CustomerID    string
	CustomerCode  string
	CarrierID     *int64
	CarrierCode   *string
	CarrierName   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ParcelModifyDB struct {
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
	Status        *string
	CustomerID    *string
	CarrierID     *int64
}
