package queries

import (
	"context"
)

type GetPackageQueryHandler struct {
	reader ParcelReader
}

func NewGetPackageQueryHandler(reader ParcelReader) GetPackageQueryHandler {
	return GetPackageQueryHandler{reader: reader}
}

// Handle returns nil and no error when the package does not exist.
func (h GetPackageQueryHandler) Handle(ctx context.Context, query GetPackageQuery) (*GetPackageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p, err := h.reader.ParcelRepository().Get(ctx, query.ID())
	if err != nil {
		return nil, absent(err)
	}

	return newGetPackageQueryResponse(p), nil
}
