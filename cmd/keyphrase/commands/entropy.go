package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keyphrase/internal/phrase"
)

func entropyCmd() *cobra.Command {
	var (
		upper  bool
		prefix bool
	)

	cmd := &cobra.Command{
		Use:   "entropy <phrase>",
		Short: "Decode a phrase back to its entropy bytes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := phrase.FromPhrase(phraseArg(args), language)
			if err != nil {
				return err
			}
			fmt.Println(phrase.HexString(kp.Entropy(), upper, prefix))
			return nil
		},
	}

	cmd.Flags().BoolVar(&upper, "upper", false, "print uppercase hex")
	cmd.Flags().BoolVar(&prefix, "prefix", false, "prepend 0x")
	return cmd
}
