package queries

import (
	"context"
)

type GetRouteQueryHandler struct {
	reader RouteReader
}

func NewGetRouteQueryHandler(reader RouteReader) GetRouteQueryHandler {
	return GetRouteQueryHandler{reader: reader}
}

// Handle returns nil and no error when the route does not exist.
func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (*GetRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	r, err := h.reader.RouteRepository().Get(ctx, query.ID())
	if err != nil {
		return nil, absent(err)
	}

	return newGetRouteQueryResponse(r), nil
}
