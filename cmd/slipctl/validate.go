package main

import (
	"fmt"
	"os"
	"packslip/internal/usecase"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <csv>",
		Short: "Check a CSV export and list the packing slips it would produce",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	// Inspect never renders or logs events.
	inspection, err := usecase.NewBulkPackingSlipUseCase(nil, nil, nil, nil).Inspect(cmd.Context(), f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rows: %d (limit %d)\n", inspection.RowsCount, usecase.MaxBulkRows)
	fmt.Fprintf(out, "orders: %d\n", len(inspection.Orders))
	for _, o := range inspection.Orders {
		fmt.Fprintf(out, "  %-24s %-32s %d row(s)\n", o.OrderID, o.FileName, o.Rows)
	}
	return nil
}
