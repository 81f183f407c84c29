package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mqt-go/qcec/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile <path>",
	Short: "Validate a gate-cost profile file.",
	Long: `Profile parses a gate-cost profile file (spec section 6's "KIND
CONTROLS COST" format) and prints every entry it recognized, or reports the
first parse error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		p, err := profile.Parse(f)
		if err != nil {
			return err
		}

		for _, e := range p.Entries() {
			fmt.Printf("%s %d -> %d\n", e.Kind, e.Controls, e.Cost)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
