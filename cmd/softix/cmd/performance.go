package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func getPerformanceAvailabilitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-performance-availabilities <performance-code>",
		Short: "Show performance availabilities",
		Long: "Show availability information for a performance. Availabilities are\n" +
			"essentially the event information.",
		Example: `  softix get-performance-availabilities PERF1 --token-json token.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tok, err := loadToken()
			if err != nil {
				return err
			}
			raw, err := newAPI(tok.AccessToken).PerformanceAvailabilities(context.Background(), sellerCode(), args[0])
			if err != nil {
				return err
			}
			return printRaw(raw)
		},
	}
}

func getPerformancePricesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get-performance-prices <performance-code>",
		Short:   "Show performance prices",
		Example: `  softix get-performance-prices PERF1 --token-json token.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tok, err := loadToken()
			if err != nil {
				return err
			}
			raw, err := newAPI(tok.AccessToken).PerformancePrices(context.Background(), sellerCode(), args[0])
			if err != nil {
				return err
			}
			return printRaw(raw)
		},
	}
}
