package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/simaogato/nestegg-backend/internal/format"
	"github.com/simaogato/nestegg-backend/internal/usecase/goalmath"
	"github.com/simaogato/nestegg-backend/internal/usecase/schedule"
)

func projectCmd() *cobra.Command {
	var (
		homePrice float64
		percent   int
		current   float64
		monthly   float64
		from      string
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the down payment projection for a home",
		Example: `  nestegg project --home-price 400000 --down-payment 20 --current 45750 --monthly 2500`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := time.Now()
			if from != "" {
				t, err := time.Parse("2006-01-02", from)
				if err != nil {
					return fmt.Errorf("invalid --from date: %w", err)
				}
				ref = t
			}

			p, err := goalmath.Project(goalmath.Inputs{
				HomePrice:           homePrice,
				DownPaymentPercent:  percent,
				CurrentAmount:       current,
				MonthlyContribution: monthly,
				ReferenceDate:       ref,
			})
			if err != nil {
				return err
			}
			installments, err := schedule.SplitContribution(decimal.NewFromFloat(monthly), schedule.InstallmentsPerMonth)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Target down payment:  %s (%d%% of %s)\n", format.Money(p.TargetAmount), percent, format.Money(homePrice))
			fmt.Fprintf(out, "Saved so far:         %s (%s)\n", format.Money(current), format.Percent(p.PercentComplete))
			fmt.Fprintf(out, "Remaining:            %s\n", format.Money(p.RemainingAmount))
			fmt.Fprintf(out, "Months to goal:       %d\n", p.MonthsToGoal)
			fmt.Fprintf(out, "Projected date:       %s\n", p.ProjectedDate.Format("January 2, 2006"))
			fmt.Fprintf(out, "Total investment:     %s\n", format.Money(p.TotalInvestment))
			for i, amount := range installments {
				f, _ := amount.Float64()
				fmt.Fprintf(out, "Purchase %d per month: %s\n", i+1, format.Money(f))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&homePrice, "home-price", 0, "home price")
	cmd.Flags().IntVar(&percent, "down-payment", 20, "down payment percent (10, 15, 20, 25 or 30)")
	cmd.Flags().Float64Var(&current, "current", 0, "amount already saved")
	cmd.Flags().Float64Var(&monthly, "monthly", 0, "monthly contribution")
	cmd.Flags().StringVar(&from, "from", "", "reference date (YYYY-MM-DD), defaults to today")
	_ = cmd.MarkFlagRequired("home-price")
	_ = cmd.MarkFlagRequired("monthly")

	return cmd
}
