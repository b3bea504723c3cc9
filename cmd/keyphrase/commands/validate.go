package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keyphrase/internal/phrase"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <phrase>",
		Short: "Check a phrase against the catalog and checksum",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := phrase.Validate(phraseArg(args), language); err != nil {
				return err
			}
			fmt.Println("phrase is valid")
			return nil
		},
	}
}
