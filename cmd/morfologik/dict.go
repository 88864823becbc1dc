package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/coregx/morfologik"
)

func dictCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Operations on compiled dictionaries",
	}
	cmd.AddCommand(dictApplyCommand())
	return cmd
}

func dictApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <file.dict> [word...]",
		Short: "Look up words in a dictionary (stdin when no words are given)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := morfologik.FromFile(args[0])
			if err != nil {
				return err
			}
			defer dict.Close()
			stemmer := morfologik.NewLookup(dict)

			if len(args) > 1 {
				for _, word := range args[1:] {
					if err := applyWord(cmd.OutOrStdout(), stemmer, word); err != nil {
						return err
					}
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if word := scanner.Text(); word != "" {
					if err := applyWord(cmd.OutOrStdout(), stemmer, word); err != nil {
						return err
					}
				}
			}
			return scanner.Err()
		},
	}
}

func applyWord(out io.Writer, stemmer morfologik.Stemmer, word string) error {
	forms, err := stemmer.Lookup([]byte(word))
	if err != nil {
		return fmt.Errorf("lookup %q: %w", word, err)
	}
	if len(forms) == 0 {
		fmt.Fprintf(out, "%s\t-\t-\n", word)
		return nil
	}
	for _, form := range forms {
		fmt.Fprintf(out, "%s\t%s\t%s\n", word, dash(form.Stem()), dash(form.Tag()))
	}
	return nil
}

func dash(b []byte) string {
	if b == nil {
		return "-"
	}
	return string(b)
}
