// Package cmd implements the softix CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/softix-tools/softix-cli/internal/softix"
	"github.com/softix-tools/softix-cli/internal/tokenfile"
	"github.com/softix-tools/softix-cli/pkg/logger"
	domain "github.com/softix-tools/softix-cli/pkg/types"
)

var (
	cfgFile string
	log     *slog.Logger

	rootCmd = newRootCmd()
)

// Execute runs the root command. Failures print the error message verbatim
// to stderr and exit non-zero; success output is the remote response on
// stdout.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// newRootCmd builds the full command tree. Tests construct their own tree
// so repeatable flags do not accumulate across invocations.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "softix",
		Short: "Command-line client for the Softix box-office API",
		Long: "softix drives a multi-step commerce transaction against the Softix\n" +
			"ticketing service: create a token, build a basket from demands and\n" +
			"fees, add offers, purchase the basket into an order, and reverse\n" +
			"orders. Lookups for performances, baskets, customers and orders are\n" +
			"read-only.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.softix.yaml)")
	root.PersistentFlags().String("client-id", "", "client ID")
	root.PersistentFlags().String("secret", "", "client secret")
	root.PersistentFlags().String("seller-code", "", "seller code")
	root.PersistentFlags().
		String("api-url", "", "Softix API base URL (default production endpoint)")
	root.PersistentFlags().
		String("token-json", "", "token JSON file created by create-token")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "text", "log format (text, json)")

	for _, flag := range []string{
		"client-id", "secret", "seller-code", "api-url",
		"token-json", "log-level", "log-format",
	} {
		cobra.CheckErr(viper.BindPFlag(flag, root.PersistentFlags().Lookup(flag)))
	}

	root.AddCommand(createTokenCmd())
	root.AddCommand(createBasketCmd())
	root.AddCommand(addOfferCmd())
	root.AddCommand(getBasketCmd())
	root.AddCommand(purchaseBasketCmd())
	root.AddCommand(reverseOrderCmd())
	root.AddCommand(getOrderCmd())
	root.AddCommand(createCustomerCmd())
	root.AddCommand(getCustomerCmd())
	root.AddCommand(deleteCustomerCmd())
	root.AddCommand(getPerformanceAvailabilitiesCmd())
	root.AddCommand(getPerformancePricesCmd())

	return root
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".softix")
	}

	viper.SetEnvPrefix("SOFTIX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	log = logger.New(viper.GetString("log-level"), viper.GetString("log-format"))
}

// newAPI constructs the remote client with the given bearer token. An
// empty token is only valid for Authenticate.
func newAPI(token string) softix.API {
	l := log
	if l == nil {
		l = logger.New("info", "text")
	}
	return softix.New(
		viper.GetString("api-url"),
		softix.WithToken(token),
		softix.WithLogger(l),
	)
}

// credential collects the client identity from flags, environment or the
// config file.
func credential() domain.Credential {
	return domain.Credential{
		ClientID:   viper.GetString("client-id"),
		Secret:     viper.GetString("secret"),
		SellerCode: viper.GetString("seller-code"),
	}
}

func sellerCode() string {
	return viper.GetString("seller-code")
}

// loadToken validates and parses the token source file. This happens before
// any network call so a malformed source never reaches the service.
func loadToken() (*domain.Token, error) {
	path := viper.GetString("token-json")
	if path == "" {
		return nil, errors.New("--token-json is required")
	}
	return tokenfile.Load(path)
}
