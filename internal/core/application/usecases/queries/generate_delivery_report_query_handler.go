package queries

import (
	"context"

	"logistics/internal/core/domain/services"
)

type GenerateDeliveryReportQueryHandler struct {
	reader ParcelReader
}

func NewGenerateDeliveryReportQueryHandler(reader ParcelReader) GenerateDeliveryReportQueryHandler {
	return GenerateDeliveryReportQueryHandler{reader: reader}
}

// Handle returns the report entries ordered by package id. An empty report is
// an empty, non-nil slice.
func (h GenerateDeliveryReportQueryHandler) Handle(
	ctx context.Context,
	query GenerateDeliveryReportQuery,
) ([]DeliveryReportEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	delivered, err := h.reader.ParcelRepository().GetAllDelivered(ctx)
	if err != nil {
		return nil, err
	}

	report := services.NewDeliveryReporter().Report(query.Period(), delivered)

	entries := make([]DeliveryReportEntry, 0, len(report))
	for _, e := range report {
		entries = append(entries, DeliveryReportEntry{
			PackageID:     e.PackageID,
			DeliveredTime: e.DeliveredTime,
			CompletedTime: e.CompletedTime,
		})
	}

	return entries, nil
}
