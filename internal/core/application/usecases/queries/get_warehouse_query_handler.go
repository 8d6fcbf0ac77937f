package queries

import (
	"context"
)

type GetWarehouseQueryHandler struct {
	reader WarehouseReader
}

func NewGetWarehouseQueryHandler(reader WarehouseReader) GetWarehouseQueryHandler {
	return GetWarehouseQueryHandler{reader: reader}
}

// Handle returns nil and no error when the warehouse does not exist.
func (h GetWarehouseQueryHandler) Handle(
	ctx context.Context,
	query GetWarehouseQuery,
) (*GetWarehouseQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	w, err := h.reader.WarehouseRepository().Get(ctx, query.ID())
	if err != nil {
		return nil, absent(err)
	}

	return newGetWarehouseQueryResponse(w), nil
}
