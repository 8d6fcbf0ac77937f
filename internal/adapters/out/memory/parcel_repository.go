package memory

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

type ParcelRepository struct {
	repository[*parcel.Parcel, parcelRecord]
}

func newParcelRepository(uow *UnitOfWork) *ParcelRepository {
	return &ParcelRepository{
		repository: repository[*parcel.Parcel, parcelRecord]{
			uow:      uow,
			entity:   "package",
			table:    func(tx *txState) *stagedTable[parcelRecord] { return tx.parcels },
			toRecord: parcelToRecord,
			toDomain: parcelRecord.toDomain,
		},
	}
}

func (r *ParcelRepository) GetAllByRoute(ctx context.Context, routeID kernel.ID) ([]*parcel.Parcel, error) {
	return r.find(ctx, func(rec parcelRecord) bool {
		return rec.RouteID != nil && *rec.RouteID == routeID
	})
}

func (r *ParcelRepository) GetAllDelivered(ctx context.Context) ([]*parcel.Parcel, error) {
	return r.find(ctx, func(rec parcelRecord) bool {
		return rec.Status.IsDelivered()
	})
}
