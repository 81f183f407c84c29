package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mqt-go/qcec/internal/checker"
	"github.com/mqt-go/qcec/internal/circuit"
	"github.com/mqt-go/qcec/internal/config"
	"github.com/mqt-go/qcec/internal/engine"
)

// scenario is one entry of the end-to-end scenario suite.
type scenario struct {
	name     string
	build    func() (c1, c2 *circuit.Circuit)
	configure func(opt *config.Options)
	want     checker.Verdict
	wantTimeout bool
}

var scenarios = []scenario{
	{
		name: "h-cx-h sandwich identity",
		build: func() (*circuit.Circuit, *circuit.Circuit) {
			c1 := circuit.NewBuilder("c1", 2).H(0).CX(0, 1).H(0).H(1).CZ(0, 1).H(1).Build()
			c2 := circuit.NewBuilder("c2", 2).CX(1, 0).Build()
			return c1, c2
		},
		want: checker.Equivalent,
	},
	{
		name: "x vs z not equivalent",
		build: func() (*circuit.Circuit, *circuit.Circuit) {
			c1 := circuit.NewBuilder("c1", 1).X(0).Build()
			c2 := circuit.NewBuilder("c2", 1).Z(0).Build()
			return c1, c2
		},
		want: checker.NotEquivalent,
	},
	{
		name: "h vs h;z;z",
		build: func() (*circuit.Circuit, *circuit.Circuit) {
			c1 := circuit.NewBuilder("c1", 1).H(0).Build()
			c2 := circuit.NewBuilder("c2", 1).H(0).Z(0).Z(0).Build()
			return c1, c2
		},
		want: checker.Equivalent,
	},
	{
		name: "global phase equivalence",
		build: func() (*circuit.Circuit, *circuit.Circuit) {
			c1 := circuit.NewBuilder("c1", 1).H(0).Build()
			c2 := circuit.NewBuilder("c2", 1).GlobalPhase(math.Pi).H(0).Build()
			return c1, c2
		},
		configure: func(opt *config.Options) {
			opt.Execution.RunConstructionChecker = false
			opt.Execution.RunSimulationChecker = false
			opt.Execution.RunAlternatingChecker = true
		},
		want: checker.EquivalentUpToGlobalPhase,
	},
	{
		name: "ancilla flip-and-reset",
		build: func() (*circuit.Circuit, *circuit.Circuit) {
			c1 := circuit.NewBuilder("c1", 2).X(1).Reset(1).H(0).Build()
			c1.SetAncillary(1)
			c2 := circuit.NewBuilder("c2", 2).H(0).Build()
			c2.SetAncillary(1)
			return c1, c2
		},
		configure: func(opt *config.Options) {
			opt.Optimizations.TransformDynamicCircuit = true
		},
		want: checker.Equivalent,
	},
	{
		name: "graph-rewrite probably-not-equivalent resolves to no-information",
		build: func() (*circuit.Circuit, *circuit.Circuit) {
			c1 := circuit.NewBuilder("c1", 1).H(0).T(0).Build()
			c2 := circuit.NewBuilder("c2", 1).H(0).Build()
			return c1, c2
		},
		configure: func(opt *config.Options) {
			opt.Execution.RunConstructionChecker = false
			opt.Execution.RunAlternatingChecker = false
			opt.Execution.RunGraphRewriteChecker = true
			opt.Execution.RunSimulationChecker = true
			opt.Simulation.MaxSims = 8
			opt.Simulation.Seed = 1
		},
		want: checker.NoInformation,
	},
	{
		name: "timeout on a slow pair",
		build: func() (*circuit.Circuit, *circuit.Circuit) {
			b1 := circuit.NewBuilder("c1", 20)
			b2 := circuit.NewBuilder("c2", 20)
			for q := uint(0); q < 20; q++ {
				b1.H(q)
				b2.H(q)
			}
			return b1.Build(), b2.Build()
		},
		configure: func(opt *config.Options) {
			opt.Execution.TimeoutSeconds = 0.001
		},
		want:        checker.NoInformation,
		wantTimeout: true,
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the built-in end-to-end scenario suite.",
	Long:  `Bench runs each scenario of the testable-properties suite and reports pass/fail.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80
		}

		failures := 0

		for _, s := range scenarios {
			opt := config.Default()
			if s.configure != nil {
				s.configure(&opt)
			}

			c1, c2 := s.build()
			m := engine.NewManager(opt)

			start := time.Now()
			result, err := m.Check(c1, c2)
			elapsed := time.Since(start)

			status := "PASS"
			if err != nil {
				status = "ERROR: " + err.Error()
				failures++
			} else if result.Equivalence != s.want {
				status = fmt.Sprintf("FAIL (got %s, want %s)", result.Equivalence, s.want)
				failures++
			} else if s.wantTimeout != result.TimedOut {
				status = fmt.Sprintf("FAIL (timed_out=%v, want %v)", result.TimedOut, s.wantTimeout)
				failures++
			}

			printRow(width, s.name, status, elapsed)
		}

		if failures > 0 {
			return fmt.Errorf("%d scenario(s) failed", failures)
		}

		return nil
	},
}

func printRow(width int, name, status string, elapsed time.Duration) {
	label := fmt.Sprintf("%-60s %-24s %8s", truncate(name, 60), status, elapsed.Round(time.Microsecond))
	if len(label) > width && width > 0 {
		label = label[:width]
	}
	fmt.Println(label)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + strings.Repeat(".", 1)
}

func init() {
	rootCmd.AddCommand(benchCmd)
}
