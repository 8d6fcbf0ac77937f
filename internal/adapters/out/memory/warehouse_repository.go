package memory

import (
	"logistics/internal/core/domain/model/warehouse"
)

type WarehouseRepository struct {
	repository[*warehouse.Warehouse, warehouseRecord]
}

func newWarehouseRepository(uow *UnitOfWork) *WarehouseRepository {
	return &WarehouseRepository{
		repository: repository[*warehouse.Warehouse, warehouseRecord]{
			uow:      uow,
			entity:   "warehouse",
			table:    func(tx *txState) *stagedTable[warehouseRecord] { return tx.warehouses },
			toRecord: warehouseToRecord,
			toDomain: warehouseRecord.toDomain,
		},
	}
}
