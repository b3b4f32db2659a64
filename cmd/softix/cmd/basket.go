package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/softix-tools/softix-cli/internal/softix"
	"github.com/softix-tools/softix-cli/internal/validate"
)

func createBasketCmd() *cobra.Command {
	var (
		section    string
		demandArgs []string
		feeArgs    []string
		customerID string
	)

	cmd := &cobra.Command{
		Use:   "create-basket <performance-code>",
		Short: "Create a basket",
		Long: "Create a basket for a performance from one or more demands and one or\n" +
			"more fees. The remote representation is printed verbatim.",
		Example: `  softix create-basket PERF1 --section A \
    --demand "GA 2 2" --fee "SVC F1" --token-json token.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			demands, err := validate.Demands(demandArgs)
			if err != nil {
				return err
			}
			fees, err := validate.Fees(feeArgs)
			if err != nil {
				return err
			}
			tok, err := loadToken()
			if err != nil {
				return err
			}

			raw, err := newAPI(tok.AccessToken).CreateBasket(context.Background(), softix.CreateBasketRequest{
				SellerCode:      sellerCode(),
				PerformanceCode: args[0],
				Section:         section,
				Demands:         demands,
				Fees:            fees,
				CustomerID:      customerID,
			})
			if err != nil {
				return err
			}
			return printRaw(raw)
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "performance section")
	cmd.Flags().
		StringArrayVar(&demandArgs, "demand", nil, `demand as "PRICE_TYPE QUANTITY ADMITS" (repeatable)`)
	cmd.Flags().
		StringArrayVar(&feeArgs, "fee", nil, `fee as "TYPE CODE" (repeatable)`)
	cmd.Flags().StringVar(&customerID, "customer-id", "", "customer ID")
	cobra.CheckErr(cmd.MarkFlagRequired("section"))
	cobra.CheckErr(cmd.MarkFlagRequired("demand"))
	cobra.CheckErr(cmd.MarkFlagRequired("fee"))

	return cmd
}

func addOfferCmd() *cobra.Command {
	var (
		section    string
		demandArgs []string
		feeArgs    []string
	)

	cmd := &cobra.Command{
		Use:   "add-offer <basket-id> <performance-code>",
		Short: "Add an offer to an existing basket",
		Long: "Append demands and fees to an existing basket with a single call.\n" +
			"The remote service decides whether the basket still accepts offers.",
		Example: `  softix add-offer B100 PERF1 --section A \
    --demand "GA 1 1" --fee "SVC F1" --token-json token.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			demands, err := validate.Demands(demandArgs)
			if err != nil {
				return err
			}
			fees, err := validate.Fees(feeArgs)
			if err != nil {
				return err
			}
			tok, err := loadToken()
			if err != nil {
				return err
			}

			raw, err := newAPI(tok.AccessToken).AddOffer(context.Background(), softix.AddOfferRequest{
				SellerCode:      sellerCode(),
				BasketID:        args[0],
				PerformanceCode: args[1],
				Section:         section,
				Demands:         demands,
				Fees:            fees,
			})
			if err != nil {
				return err
			}
			return printRaw(raw)
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "performance section")
	cmd.Flags().
		StringArrayVar(&demandArgs, "demand", nil, `demand as "PRICE_TYPE QUANTITY ADMITS" (repeatable)`)
	cmd.Flags().
		StringArrayVar(&feeArgs, "fee", nil, `fee as "TYPE CODE" (repeatable)`)
	cobra.CheckErr(cmd.MarkFlagRequired("section"))
	cobra.CheckErr(cmd.MarkFlagRequired("demand"))
	cobra.CheckErr(cmd.MarkFlagRequired("fee"))

	return cmd
}

func getBasketCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get-basket <basket-id>",
		Short:   "Show basket details",
		Example: `  softix get-basket B100 --token-json token.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tok, err := loadToken()
			if err != nil {
				return err
			}
			raw, err := newAPI(tok.AccessToken).Basket(context.Background(), sellerCode(), args[0])
			if err != nil {
				return err
			}
			return printRaw(raw)
		},
	}
}
