package services

import (
	"cmp"
	"slices"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"
)

const (
	// The report calendar is approximate: every year has 365 days and every
	// month 30, counted from the Unix epoch.
	daysPerYear   = 365
	daysPerMonth  = 30
	secondsPerDay = 24 * 60 * 60

	MinReportYear = 1970
	MaxReportYear = 9999
)

// ReportPeriod is the half-open window [Start, End) covered by a monthly
// delivery report.
type ReportPeriod struct {
	month int
	year  int
	start time.Time
	end   time.Time
}

// NewReportPeriod returns the window for month (1-12) of year.
func NewReportPeriod(month, year int) (ReportPeriod, error) {
	if month < 1 || month > 12 {
		return ReportPeriod{}, errs.NewValueIsOutOfRangeError("month", month, 1, 12)
	}
	if year < MinReportYear || year > MaxReportYear {
		return ReportPeriod{}, errs.NewValueIsOutOfRangeError("year", year, MinReportYear, MaxReportYear)
	}

	days := int64(year-MinReportYear)*daysPerYear + int64(month-1)*daysPerMonth
	start := time.Unix(days*secondsPerDay, 0).UTC()

	return ReportPeriod{
		month: month,
		year:  year,
		start: start,
		end:   start.Add(daysPerMonth * secondsPerDay * time.Second),
	}, nil
}

// PreviousReportPeriod returns the window for the calendar month before now.
func PreviousReportPeriod(now time.Time) (ReportPeriod, error) {
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return NewReportPeriod(int(prev.Month()), prev.Year())
}

func (p ReportPeriod) Month() int {
	return p.month
}

func (p ReportPeriod) Year() int {
	return p.year
}

func (p ReportPeriod) Start() time.Time {
	return p.start
}

func (p ReportPeriod) End() time.Time {
	return p.end
}

// Contains reports whether t falls in [Start, End).
func (p ReportPeriod) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.end)
}

// ReportEntry is one delivered package in a delivery report. DeliveredTime
// carries the package creation time; CompletedTime is the moment the carrying
// route completed, if known.
type ReportEntry struct {
	PackageID     kernel.ID
	DeliveredTime time.Time
	CompletedTime *time.Time
}

// DeliveryReporter selects the delivered packages created within a period.
type DeliveryReporter struct{}

func NewDeliveryReporter() DeliveryReporter {
	return DeliveryReporter{}
}

// Report returns an entry for every Delivered parcel whose creation time
// falls inside period, ordered by package id.
func (DeliveryReporter) Report(period ReportPeriod, parcels []*parcel.Parcel) []ReportEntry {
	entries := make([]ReportEntry, 0)
	for _, p := range parcels {
		if p == nil || !p.Status().IsDelivered() || !period.Contains(p.CreatedAt()) {
			continue
		}
		entries = append(entries, ReportEntry{
			PackageID:     p.ID(),
			DeliveredTime: p.CreatedAt(),
			CompletedTime: p.DeliveredAt(),
		})
	}

	slices.SortFunc(entries, func(a, b ReportEntry) int {
		return cmp.Compare(a.PackageID, b.PackageID)
	})

	return entries
}
