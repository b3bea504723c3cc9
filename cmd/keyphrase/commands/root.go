package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"keyphrase/internal/wordlist"
)

var (
	languageName string
	language     wordlist.Language
)

func Execute() error {
	root := &cobra.Command{
		Use:   "keyphrase",
		Short: "Checksum-protected keyphrase encoding of entropy",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lang, err := wordlist.Parse(languageName)
			if err != nil {
				return err
			}
			language = lang
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&languageName, "language", "l", "english",
		"word catalog language (english, chinese-simplified, chinese-traditional, french, italian, japanese, korean, spanish)")

	root.AddCommand(generateCmd(), validateCmd(), entropyCmd(), seedCmd())
	return root.Execute()
}

// phraseArg joins the positional arguments into phrase text. A quoted
// phrase arrives as one argument; an unquoted one as a word per argument.
func phraseArg(args []string) string {
	return strings.Join(args, " ")
}
