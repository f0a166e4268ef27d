package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"wealth-objective/domain"
	"wealth-objective/projection"
	"wealth-objective/service"
)

func newProjectCmd() *cobra.Command {
	var (
		principal    string
		contribution string
		rate         string
		periods      int
		target       string
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project period-end balances of a compounding series",
		Long: "Project computes balance[p] = balance[p-1] * (1 + rate) + contribution for\n" +
			"p = 1..periods, with the contribution added at the end of each period.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fromContext(cmd)

			if err := service.CheckHorizon(periods); err != nil {
				return err
			}

			input := domain.ProjectionInput{HorizonPeriods: periods}
			var err error
			if input.Principal, err = parseDecimal("principal", principal); err != nil {
				return err
			}
			if input.PeriodicContribution, err = parseDecimal("contribution", contribution); err != nil {
				return err
			}
			if input.PeriodicRate, err = parseDecimal("rate", rate); err != nil {
				return err
			}
			if target != "" {
				var t decimal.Decimal
				if t, err = parseDecimal("target", target); err != nil {
					return err
				}
				input.Target = &t
			}

			result, err := projection.Project(input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.output == "json" {
				return writeJSON(out, result)
			}

			tw := newTable(out)
			fprintf(tw, "Period\tBalance\t\n")
			for _, pt := range result.Points {
				fprintf(tw, "%d\t%s\t\n", pt.Period, pt.Balance.StringFixed(projection.CentPlaces))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			switch {
			case input.Target == nil:
			case result.TargetReachedAtPeriod != nil:
				fprintf(out, "target reached at period %d\n", *result.TargetReachedAtPeriod)
			default:
				fprintf(out, "target not reached within %d periods\n", periods)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&principal, "principal", "0", "initial balance at period 0")
	f.StringVar(&contribution, "contribution", "0", "contribution added at the end of each period (negative for withdrawals)")
	f.StringVar(&rate, "rate", "0", "growth rate per period as a fraction (0.005 = 0.5%)")
	f.IntVar(&periods, "periods", 0, "number of periods")
	f.StringVar(&target, "target", "", "optional target balance")
	_ = cmd.MarkFlagRequired("periods")

	return cmd
}
