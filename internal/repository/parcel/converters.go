package parcel

import (
	"parcel-service/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	parcel := &entities.Parcel{
		ID:            p.ID,
		ParcelRef:     p.ParcelRef,
		ReceiveDate:   p.ReceiveDate,
		Description:   p.Description,
		Pack:          p.Pack,
		Weight:        p.Weight,
		Length:        p.Length,
		Width:         p.Width,
		Height:        p.Height,
		Cbm:           p.Cbm,
		Freight:       p.Freight,
		Estimate:      p.Estimate,
		Tracking:      p.Tracking,
		ThTracking:    p.ThTracking,
		ContainerCode: p.ContainerCode,
		EstimatedDate: p.EstimatedDate,
		Status:        entities.ParcelStatusType(p.Status),
		CustomerID:    p.CustomerID,
		CustomerCode:  p.CustomerCode,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if p.CarrierID != nil && p.CarrierCode != nil && p.CarrierName != nil {
		parcel.Carrier = &entities.Carrier{
			ID:   *p.CarrierID,
			Code: *p.CarrierCode,
			Name: *p.CarrierName,
		}
	}

	return parcel
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToDomain(&parcelDB)
	}
	return result
}

func FromDomainModify(parcelModify *entities.ParcelModify) *ParcelModifyDB {
	if parcelModify == nil {
		return nil
	}
	parcelDB := &ParcelModifyDB{
		ID:            parcelModify.ID,
		ParcelRef:     parcelModify.ParcelRef,
		ReceiveDate:   parcelModify.ReceiveDate,
		Description:   parcelModify.Description,
		Pack:          parcelModify.Pack,
		Weight:        parcelModify.Weight,
		Length:        parcelModify.Length,
		Width:         parcelModify.Width,
		Height:        parcelModify.Height,
		Cbm:           parcelModify.Cbm,
		Freight:       parcelModify.Freight,
		Estimate:      parcelModify.Estimate,
		Tracking:      parcelModify.Tracking,
		ThTracking:    parcelModify.ThTracking,
		ContainerCode: parcelModify.ContainerCode,
		EstimatedDate: parcelModify.EstimatedDate,
		CustomerID:    parcelModify.CustomerID,
		CarrierID:     parcelModify.CarrierID,
	}

	if parcelModify.Status != nil {
		status := parcelModify.Status.String()
		parcelDB.Status = &status
	}

	return parcelDB
}
