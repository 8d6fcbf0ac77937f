package memory

import (
	"logistics/internal/core/domain/model/route"
)

type RouteRepository struct {
	repository[*route.Route, routeRecord]
}

func newRouteRepository(uow *UnitOfWork) *RouteRepository {
	return &RouteRepository{
		repository: repository[*route.Route, routeRecord]{
			uow:      uow,
			entity:   "route",
			table:    func(tx *txState) *stagedTable[routeRecord] { return tx.routes },
			toRecord: routeToRecord,
			toDomain: routeRecord.toDomain,
		},
	}
}
