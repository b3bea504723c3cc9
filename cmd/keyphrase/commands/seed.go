package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keyphrase/internal/phrase"
	"keyphrase/internal/seed"
)

func seedCmd() *cobra.Command {
	var (
		password string
		upper    bool
		prefix   bool
	)

	cmd := &cobra.Command{
		Use:   "seed <phrase>",
		Short: "Derive the seed from a phrase and optional password",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := phrase.FromPhrase(phraseArg(args), language)
			if err != nil {
				return err
			}
			s := seed.New(kp, password)
			fmt.Println(phrase.HexString(s.Bytes(), upper, prefix))
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password mixed into the KDF salt")
	cmd.Flags().BoolVar(&upper, "upper", false, "print uppercase hex")
	cmd.Flags().BoolVar(&prefix, "prefix", false, "prepend 0x")
	return cmd
}
