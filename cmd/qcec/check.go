package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/mqt-go/qcec/internal/engine"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] circuit1 circuit2",
	Short: "Check whether two circuits are equivalent.",
	Long: `Check compares two circuits, each given as a line-oriented gate list
(a "qubits <n>" line first, then one instruction per line, "#" starting a
comment), and reports the combined verdict as a JSON result record.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := buildOptions(cmd)
		if err != nil {
			return err
		}

		c1, err := loadCircuit(args[0])
		if err != nil {
			return err
		}

		c2, err := loadCircuit(args[1])
		if err != nil {
			return err
		}

		m := engine.NewManager(opt)

		result, err := m.Check(c1, c2)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(result.AsMap())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
