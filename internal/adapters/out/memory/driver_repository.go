package memory

import (
	"logistics/internal/core/domain/model/driver"
)

type DriverRepository struct {
	repository[*driver.Driver, driverRecord]
}

func newDriverRepository(uow *UnitOfWork) *DriverRepository {
	return &DriverRepository{
		repository: repository[*driver.Driver, driverRecord]{
			uow:      uow,
			entity:   "driver",
			table:    func(tx *txState) *stagedTable[driverRecord] { return tx.drivers },
			toRecord: driverToRecord,
			toDomain: driverRecord.toDomain,
		},
	}
}
