package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coregx/morfologik/fsa"
)

func fsaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fsa",
		Short: "Operations on raw automaton files",
	}
	cmd.AddCommand(fsaInfoCommand(), fsaDumpCommand())
	return cmd
}

func fsaInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.dict>",
		Short: "Print automaton header information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			a, err := fsa.New(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch t := a.(type) {
			case *fsa.FSA5:
				fmt.Fprintln(out, "format:       FSA5")
				fmt.Fprintf(out, "gtl:          %d\n", t.GotoLength())
				fmt.Fprintf(out, "n_size:       %d\n", t.NodeDataLength())
			case *fsa.CFSA2:
				fmt.Fprintln(out, "format:       CFSA2")
				fmt.Fprintf(out, "gtl info:     %d\n", t.GotoLengthInfo())
			}
			fmt.Fprintf(out, "flags:        0x%04X\n", uint16(a.Flags()))
			fmt.Fprintf(out, "root:         %d\n", a.Root())
			fmt.Fprintf(out, "sequences:    %d\n", countSequences(a))
			return nil
		},
	}
}

func fsaDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file.dict>",
		Short: "Print every byte sequence the automaton accepts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			a, err := fsa.New(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			it := fsa.NewIterator(a, a.Root())
			for it.Next() {
				fmt.Fprintln(out, strconv.Quote(string(it.Sequence())))
			}
			return it.Err()
		},
	}
}

func countSequences(a fsa.Automaton) int {
	n := 0
	it := fsa.NewIterator(a, a.Root())
	for it.Next() {
		n++
	}
	return n
}
