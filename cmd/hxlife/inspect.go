package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pthm/hxlife/lib/snapshot"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [snapshot]",
	Short: "Print a lifecycle snapshot as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		return inspect(cmd.OutOrStdout(), f)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func inspect(out io.Writer, r io.Reader) error {
	tree, err := snapshot.Decode(r)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return fmt.Errorf("failed to print snapshot: %w", err)
	}
	return enc.Close()
}
