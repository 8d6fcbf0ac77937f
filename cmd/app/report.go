package main

import (
	"time"

	"logistics/cmd"
	"logistics/internal/core/application/usecases/queries"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type reportLine struct {
	PackageID     uint64     `json:"packageId"`
	DeliveredTime time.Time  `json:"deliveredTime"`
	CompletedTime *time.Time `json:"completedTime,omitempty"`
}

func newReportCommand() *cobra.Command {
	var month, year int

	command := &cobra.Command{
		Use:   "report",
		Short: "Print the delivery report of a month as JSON lines",
		Long: `Print the packages delivered in an approximate month: 30-day months
in 365-day years counted from 1970. Without flags the previous calendar
month is reported.

The report reads the registry the server writes to, so it needs
BACKEND=postgres. The memory backend starts empty in every process and
is rejected.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			config, logger, err := setup()
			if err != nil {
				return err
			}
			if err = cmd.RequireSharedBackend(config); err != nil {
				return err
			}

			backend, err := cmd.OpenBackend(config, logger)
			if err != nil {
				return err
			}
			defer backend.Close()

			var query queries.GenerateDeliveryReportQuery
			if c.Flags().Changed("month") || c.Flags().Changed("year") {
				query, err = queries.NewGenerateDeliveryReportQuery(month, year)
			} else {
				query, err = queries.NewPreviousMonthDeliveryReportQuery(time.Now().UTC())
			}
			if err != nil {
				return err
			}

			app := cmd.NewCompositionRoot(config, backend.UoWFactory, logger)
			entries, err := app.CreateGenerateDeliveryReportQueryHandler().Handle(c.Context(), query)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.OutOrStdout())
			for _, e := range entries {
				if err = enc.Encode(reportLine{
					PackageID:     uint64(e.PackageID),
					DeliveredTime: e.DeliveredTime,
					CompletedTime: e.CompletedTime,
				}); err != nil {
					return err
				}
			}
			return nil
		},
	}

	now := time.Now().UTC()
	command.Flags().IntVar(&month, "month", int(now.Month()), "month to report, 1..12")
	command.Flags().IntVar(&year, "year", now.Year(), "year to report")

	return command
}
