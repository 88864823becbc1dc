// Command morfologik inspects FSA dictionary files and applies compiled
// dictionaries to words.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "morfologik",
		Short:         "Inspect and apply Morfologik FSA dictionaries",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(fsaCommand(), dictCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
