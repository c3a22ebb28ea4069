package main

import (
	"fmt"
	"os"
	"packslip/internal/infrastructure/pdf"
	"packslip/internal/usecase"
	"packslip/internal/usecase/interfaces"
	"time"

	"github.com/spf13/cobra"
)

type bulkOptions struct {
	output     string
	pageSize   string
	chromePath string
	timeout    time.Duration
}

// rendererFactory is swapped in tests.
var rendererFactory = func(opts bulkOptions) (interfaces.IDocumentRenderer, func(), error) {
	r, err := pdf.NewChromeRenderer(pdf.ChromeOptions{ExecPath: opts.chromePath, Timeout: opts.timeout})
	if err != nil {
		return nil, nil, err
	}
	return r, r.Close, nil
}

func newBulkCmd() *cobra.Command {
	opts := bulkOptions{}

	cmd := &cobra.Command{
		Use:   "bulk <csv>",
		Short: "Render one PDF per order and write them into a ZIP archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBulk(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", usecase.ArchiveFileName, "archive path")
	cmd.Flags().StringVar(&opts.pageSize, "page-size", "A4", "A4 or LETTER")
	cmd.Flags().StringVar(&opts.chromePath, "chrome-path", os.Getenv("CHROME_PATH"), "Chrome/Chromium executable")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "per-document render timeout")
	return cmd
}

func runBulk(cmd *cobra.Command, path string, opts bulkOptions) error {
	pageSize, err := usecase.ParsePageSize(opts.pageSize)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	renderer, closeRenderer, err := rendererFactory(opts)
	if err != nil {
		return err
	}
	defer closeRenderer()

	events, closeEvents, err := openEventLogger(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = closeEvents() }()

	result, err := usecase.NewBulkPackingSlipUseCase(renderer, events, nil, nil).Generate(cmd.Context(), f, usecase.BulkOptions{PageSize: pageSize})
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.output, result.Archive, 0o644); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d order(s) from %d row(s)\n", opts.output, result.OrdersCount, result.RowsCount)
	return nil
}
