package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var ErrGenerateDeliveryReportQueryIsNotConstructed = errors.New(
	"GenerateDeliveryReportQuery must be created via NewGenerateDeliveryReportQuery constructor",
)

// GenerateDeliveryReportQuery lists the delivered packages created in an
// approximate month: 30-day months in 365-day years counted from the Unix
// epoch.
//
// Example:
//
//	query, err := NewGenerateDeliveryReportQuery(3, 2024)
//	if err != nil {
//	    return err // month or year out of range
//	}
//	entries, err := handler.Handle(ctx, query)
type GenerateDeliveryReportQuery struct {
	period services.ReportPeriod
	guard  guard.ConstructorGuard
}

// NewGenerateDeliveryReportQuery returns a ValueIsOutOfRangeError unless
// month is in 1..12 and year in services.MinReportYear..services.MaxReportYear.
func NewGenerateDeliveryReportQuery(month, year int) (GenerateDeliveryReportQuery, error) {
	period, err := services.NewReportPeriod(month, year)
	if err != nil {
		return GenerateDeliveryReportQuery{}, err
	}

	return GenerateDeliveryReportQuery{period: period, guard: guard.NewConstructorGuard()}, nil
}

// NewPreviousMonthDeliveryReportQuery reports on the calendar month before now.
func NewPreviousMonthDeliveryReportQuery(now time.Time) (GenerateDeliveryReportQuery, error) {
	period, err := services.PreviousReportPeriod(now)
	if err != nil {
		return GenerateDeliveryReportQuery{}, err
	}

	return GenerateDeliveryReportQuery{period: period, guard: guard.NewConstructorGuard()}, nil
}

func (q GenerateDeliveryReportQuery) Validate() error {
	return q.guard.Validate(ErrGenerateDeliveryReportQueryIsNotConstructed)
}

func (q GenerateDeliveryReportQuery) Period() services.ReportPeriod {
	return q.period
}

// DeliveryReportEntry is one line of the delivery report. DeliveredTime is the
// package's creation time; CompletedTime is when its route completed.
type DeliveryReportEntry struct {
	PackageID     kernel.ID
	DeliveredTime time.Time
	CompletedTime *time.Time
}
