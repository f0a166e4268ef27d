package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wealth-objective/report"
	"wealth-objective/service"
)

func newHoldingsCmd() *cobra.Command {
	var (
		file        string
		assetColumn string
		valueColumn string
	)

	cmd := &cobra.Command{
		Use:   "holdings",
		Short: "Sum the net worth of a holdings CSV export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd)

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("open holdings file: %w", err)
			}
			defer f.Close()

			svc := service.NewHoldingsService(a.logger)
			result, err := svc.Import(f, service.HoldingsOptions{AssetColumn: assetColumn, ValueColumn: valueColumn})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.output == "json" {
				return writeJSON(out, result)
			}

			tw := newTable(out)
			fprintf(tw, "%s\t%s\t\n", result.AssetColumn, result.ValueColumn)
			for _, h := range result.Holdings {
				fprintf(tw, "%s\t%s\t\n", h.Asset, report.Money(h.Value, 2))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fprintf(out, "Patrimonio Total Detectado: %s\n", report.Money(result.Total, 2))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file with one asset per row [REQUIRED]")
	cmd.Flags().StringVar(&assetColumn, "asset-column", "", "asset column name (default: detected)")
	cmd.Flags().StringVar(&valueColumn, "value-column", "", "value column name (default: detected)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
