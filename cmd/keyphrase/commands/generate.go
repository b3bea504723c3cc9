package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"keyphrase/internal/phrase"
)

func generateCmd() *cobra.Command {
	var (
		words       int
		entropyHex  string
		showEntropy bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create a new keyphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			var kp *phrase.Keyphrase
			var err error

			if entropyHex != "" {
				ent, herr := hex.DecodeString(strings.TrimPrefix(entropyHex, "0x"))
				if herr != nil {
					return fmt.Errorf("bad entropy hex: %w", herr)
				}
				kp, err = phrase.FromEntropy(ent, language)
			} else {
				length, lerr := phrase.ForWordCount(words)
				if lerr != nil {
					return lerr
				}
				kp, err = phrase.Generate(length, language)
			}
			if err != nil {
				return err
			}

			fmt.Println(kp.Phrase())
			if showEntropy {
				fmt.Printf("entropy: %#x\n", kp)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&words, "words", "w", 24, "phrase length in words (12, 15, 18, 21 or 24)")
	cmd.Flags().StringVar(&entropyHex, "entropy", "", "encode this entropy (hex) instead of fresh random bytes")
	cmd.Flags().BoolVar(&showEntropy, "show-entropy", false, "also print the entropy as hex")
	return cmd
}
