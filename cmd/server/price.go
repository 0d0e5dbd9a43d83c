package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/simaogato/nestegg-backend/internal/adapter/pricefeed"
	"github.com/simaogato/nestegg-backend/internal/config"
	"github.com/simaogato/nestegg-backend/internal/format"
	"github.com/simaogato/nestegg-backend/internal/usecase/price"
)

func priceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price",
		Short: "Fetch the current price once from the configured source",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := configureLogger(cmd, cfg.LogLevel, cfg.IsProduction()); err != nil {
				return err
			}

			feed := pricefeed.NewClient(cfg.Price.URL, cfg.Price.JSONPath,
				pricefeed.WithTimePath(cfg.Price.TimeJSONPath),
				pricefeed.WithLogger(logger),
			)
			sample, err := price.NewRefresher(feed, price.WithBaseline(cfg.Price.Baseline)).Refresh(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  as of %s\n",
				format.Money(sample.Price),
				format.SignedPercent(sample.ChangePercent),
				sample.ObservedAt.Local().Format(time.RFC1123),
			)
			return nil
		},
	}
}
