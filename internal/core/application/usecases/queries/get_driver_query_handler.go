package queries

import (
	"context"
)

type GetDriverQueryHandler struct {
	reader DriverReader
}

func NewGetDriverQueryHandler(reader DriverReader) GetDriverQueryHandler {
	return GetDriverQueryHandler{reader: reader}
}

// Handle returns nil and no error when the driver does not exist.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (*GetDriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	d, err := h.reader.DriverRepository().Get(ctx, query.ID())
	if err != nil {
		return nil, absent(err)
	}

	return newGetDriverQueryResponse(d), nil
}
