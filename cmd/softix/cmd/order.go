package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/softix-tools/softix-cli/internal/softix"
)

func purchaseBasketCmd() *cobra.Command {
	var customerID string

	cmd := &cobra.Command{
		Use:   "purchase-basket <basket-id>",
		Short: "Purchase a basket",
		Long: "Purchase a basket into an order with exactly one call. The resulting\n" +
			"order is printed verbatim.",
		Example: `  softix purchase-basket B100 --token-json token.json
  softix purchase-basket B100 --customer-id C42 --token-json token.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tok, err := loadToken()
			if err != nil {
				return err
			}
			raw, err := newAPI(tok.AccessToken).PurchaseBasket(context.Background(), softix.PurchaseRequest{
				SellerCode: sellerCode(),
				BasketID:   args[0],
				CustomerID: customerID,
			})
			if err != nil {
				return err
			}
			return printRaw(raw)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer-id", "", "customer ID")

	return cmd
}

func reverseOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse-order <order-id>",
		Short: "Reverse an order",
		Long: "Reverse an order. One call, one outcome: the client attempts no\n" +
			"compensating action on a partial remote failure.",
		Example: `  softix reverse-order O500 --token-json token.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tok, err := loadToken()
			if err != nil {
				return err
			}
			result, err := newAPI(tok.AccessToken).ReverseOrder(context.Background(), sellerCode(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		},
	}
}

func getOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get-order <order-id>",
		Short:   "Show order details",
		Example: `  softix get-order O500 --token-json token.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tok, err := loadToken()
			if err != nil {
				return err
			}
			raw, err := newAPI(tok.AccessToken).Order(context.Background(), sellerCode(), args[0])
			if err != nil {
				return err
			}
			return printRaw(raw)
		},
	}
}
