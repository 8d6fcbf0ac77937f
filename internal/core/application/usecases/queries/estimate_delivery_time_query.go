package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrEstimateDeliveryTimeQueryIsNotConstructed = errors.New(
	"EstimateDeliveryTimeQuery must be created via NewEstimateDeliveryTimeQuery constructor",
)

// EstimateDeliveryTimeQuery asks how long a routed package will take to arrive.
type EstimateDeliveryTimeQuery struct {
	packageID kernel.ID
	guard     guard.ConstructorGuard
}

func NewEstimateDeliveryTimeQuery(packageID kernel.ID) EstimateDeliveryTimeQuery {
	return EstimateDeliveryTimeQuery{packageID: packageID, guard: guard.NewConstructorGuard()}
}

func (q EstimateDeliveryTimeQuery) Validate() error {
	return q.guard.Validate(ErrEstimateDeliveryTimeQueryIsNotConstructed)
}

func (q EstimateDeliveryTimeQuery) PackageID() kernel.ID {
	return q.packageID
}
