package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wealth-objective/domain"
	"wealth-objective/report"
	"wealth-objective/service"
)

func newObjectiveCmd() *cobra.Command {
	var (
		goal         string
		wealth       string
		contribution string
		years        int
		spending     string
		withdrawal   string
		inflation    string
		reference    string
		baseYear     int
		pdfPath      string
	)

	cmd := &cobra.Command{
		Use:   "objective",
		Short: "Analyze the viability of a wealth objective",
		Long: "Objective derives the target wealth from the desired monthly spending and\n" +
			"the distribution rate, then computes the return needed with the current\n" +
			"savings and the savings needed at the reference return.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd)

			input := domain.ObjectiveInput{GoalName: goal, Years: years, BaseYear: baseYear}
			var err error
			if input.PresentValue, err = parseDecimal("wealth", wealth); err != nil {
				return err
			}
			if input.MonthlyContribution, err = parseDecimal("contribution", contribution); err != nil {
				return err
			}
			if input.MonthlySpending, err = parseDecimal("spending", spending); err != nil {
				return err
			}
			if input.WithdrawalRate, err = parseDecimal("withdrawal-rate", withdrawal); err != nil {
				return err
			}
			if input.Inflation, err = parseDecimal("inflation", inflation); err != nil {
				return err
			}
			if input.ReferenceRate, err = parseDecimal("reference-rate", reference); err != nil {
				return err
			}

			svc := service.NewObjectiveService(a.logger, a.cfg.Report.BaseYear)
			result, err := svc.Analyze(input)
			if err != nil {
				return err
			}

			if pdfPath != "" {
				if err := writeReport(pdfPath, result); err != nil {
					return err
				}
				a.logger.Info("report written", zap.String("path", pdfPath))
			}

			out := cmd.OutOrStdout()
			if a.output == "json" {
				return writeJSON(out, result)
			}
			printObjective(cmd, result)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&goal, "goal", service.DefaultGoalName, "name of the objective")
	f.StringVar(&wealth, "wealth", "100000", "current net worth")
	f.StringVar(&contribution, "contribution", "1000", "current monthly contribution")
	f.IntVar(&years, "years", 20, "horizon in years (1-50)")
	f.StringVar(&spending, "spending", "3000", "desired monthly spending")
	f.StringVar(&withdrawal, "withdrawal-rate", "4", "distribution rate in percent (1-8)")
	f.StringVar(&inflation, "inflation", "2.5", "expected inflation in percent (0-10)")
	f.StringVar(&reference, "reference-rate", "7", "reference fixed return in percent (0-20)")
	f.IntVar(&baseYear, "base-year", 0, "calendar year of projection year 0 (default: config or current year)")
	f.StringVar(&pdfPath, "pdf", "", "write a PDF report to this path")

	return cmd
}

func writeReport(path string, result domain.ObjectiveResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.Render(f, result, service.ReportHeadYears); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printObjective(cmd *cobra.Command, res domain.ObjectiveResult) {
	out := cmd.OutOrStdout()
	in := res.Input

	fprintf(out, "Análisis: %s\n", in.GoalName)
	fprintf(out, "Patrimonio necesario:          %s\n", report.Money(res.TargetWealth, 0))
	if res.RequiredRate != nil {
		fprintf(out, "Rentabilidad anual necesaria:  %s\n", report.Percent(*res.RequiredRate))
	} else {
		fprintf(out, "Rentabilidad anual necesaria:  Inviable\n")
	}
	fprintf(out, "Ahorro mensual ideal (al %s): %s (gap %s)\n",
		report.PercentValue(in.ReferenceRate), report.Money(res.RequiredContribution, 0), report.Money(res.ContributionGap, 0))
	fprintf(out, "Proyección final (al %s):     %s (%s vs objetivo)\n",
		report.PercentValue(in.ReferenceRate), report.Money(res.FinalProjection, 0), report.Money(res.Surplus, 0))
	fprintf(out, "Proyección final en euros de hoy: %s\n\n", report.Money(res.RealFinalProjection, 0))

	tw := newTable(out)
	fprintf(tw, "Año\tMercado\tIdeal\tSolo ahorro\t\n")
	for _, pt := range res.Series {
		fprintf(tw, "%d\t%s\t%s\t%s\t\n", in.BaseYear+pt.Year,
			report.Money(pt.Market, 0), report.Money(pt.Ideal, 0), report.Money(pt.CashOnly, 0))
	}
	_ = tw.Flush()
}
