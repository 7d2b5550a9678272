package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/appuploader/itunes-service-v3/ipa"
	"github.com/appuploader/itunes-service-v3/manager"
)

var (
	flagEmail    string
	flagPassword string
	flagCode     string
	flagDsid     string
	flagVersion  string
	flagOut      string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "itunes-service",
	Short: "Client for the iTunes store commerce endpoints",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Sign in to an Apple ID, resubmit with --code after a 2FA challenge",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := manager.GetStoreClientManager().ClientFor(flagEmail)
		result, e := client.Authenticate(flagEmail, flagPassword, flagCode)
		if e != nil {
			return fmt.Errorf("sign in error: %s", e.Body)
		}
		if result.RequiresSecondFactor {
			fmt.Println("verification code required, rerun with --code")
			return nil
		}
		return printJSON(result)
	},
}

var purchaseCmd = &cobra.Command{
	Use:   "purchase <adamId>",
	Short: "Acquire a license for a salable item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := manager.GetStoreClientManager().ClientFor(flagEmail)
		if flagDsid != "" {
			client.SetDsPersonId(flagDsid)
		}
		outcome, e := client.Purchase(args[0])
		if e != nil {
			return fmt.Errorf("purchase error: %s", e.Body)
		}
		return printJSON(outcome)
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download <adamId>",
	Short: "Resolve the package url for an owned item, optionally fetching it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := manager.GetStoreClientManager().ClientFor(flagEmail)
		if flagDsid != "" {
			client.SetDsPersonId(flagDsid)
		}
		result, e := client.Download(args[0], flagVersion)
		if e != nil {
			return fmt.Errorf("download error: %s", e.Body)
		}
		if result.FailureType != "" {
			return fmt.Errorf("download failed: %s %s", result.FailureType, result.CustomerMessage)
		}
		item := result.First()
		if item == nil {
			return fmt.Errorf("no download item returned")
		}
		if flagOut != "" {
			path, fe := ipa.Fetch(item, flagOut)
			if fe != nil {
				return fe
			}
			fmt.Println(path)
			return nil
		}
		return printJSON(item)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Fetch the account's purchase history",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := manager.GetStoreClientManager().ClientFor(flagEmail)
		if flagDsid != "" {
			client.SetDsPersonId(flagDsid)
		}
		doc, e := client.PurchaseHistory()
		if e != nil {
			return fmt.Errorf("history error: %s", e.Body)
		}
		return printJSON(doc)
	},
}

func printJSON(v any) error {
	out, e := jsoniter.MarshalIndent(v, "", "  ")
	if e != nil {
		return e
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&flagEmail, "email", "e", "", "Apple ID email")
	rootCmd.PersistentFlags().StringVar(&flagDsid, "dsid", "", "authenticated person id from a previous sign in")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.MarkPersistentFlagRequired("email")

	authCmd.Flags().StringVarP(&flagPassword, "password", "p", "", "Apple ID password")
	authCmd.Flags().StringVar(&flagCode, "code", "", "2FA verification code")
	authCmd.MarkFlagRequired("password")

	downloadCmd.Flags().StringVar(&flagVersion, "app-version", "", "external version id of a historical build")
	downloadCmd.Flags().StringVarP(&flagOut, "out", "o", "", "directory to fetch the package into")

	rootCmd.AddCommand(authCmd, purchaseCmd, downloadCmd, historyCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
