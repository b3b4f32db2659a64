package cmd

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
)

func createCustomerCmd() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "create-customer",
		Short: "Create a customer",
		Example: `  softix create-customer --data '{"firstName":"Ada","lastName":"Lovelace"}' \
    --token-json token.json`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// A malformed payload is a local failure, reported distinctly
			// from remote errors and before any network call.
			if !json.Valid([]byte(data)) {
				return errors.New("unable to parse customer data as JSON")
			}
			tok, err := loadToken()
			if err != nil {
				return err
			}
			raw, err := newAPI(tok.AccessToken).CreateCustomer(context.Background(), sellerCode(), json.RawMessage(data))
			if err != nil {
				return err
			}
			return printRaw(raw)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "customer data as JSON")
	cobra.CheckErr(cmd.MarkFlagRequired("data"))

	return cmd
}

func getCustomerCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get-customer <customer-id>",
		Short:   "Show customer details",
		Example: `  softix get-customer C42 --token-json token.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tok, err := loadToken()
			if err != nil {
				return err
			}
			raw, err := newAPI(tok.AccessToken).Customer(context.Background(), sellerCode(), args[0])
			if err != nil {
				return err
			}
			return printRaw(raw)
		},
	}
}

func deleteCustomerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-customer <customer-id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, _ []string) error {
			// Customer deletion is not specified by the service yet.
			// Failing loudly beats the silent no-op it would otherwise be.
			return errors.New("delete-customer is not implemented")
		},
	}
}
