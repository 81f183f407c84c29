package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mqt-go/qcec/internal/config"
	"github.com/mqt-go/qcec/internal/scheme"
	"github.com/mqt-go/qcec/internal/stimulus"
)

// Version is filled in at build time via -ldflags; empty otherwise.
var Version string

var rootCmd = &cobra.Command{
	Use:   "qcec",
	Short: "A decision-diagram-based quantum circuit equivalence checker.",
	Long: `qcec compares two quantum circuits and decides whether they implement
the same linear operator, up to global phase, or reports inconclusively
within a time budget.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			fmt.Print("qcec ")
			if Version != "" {
				fmt.Print(Version)
			} else {
				fmt.Print("(unknown version)")
			}
			fmt.Println()
			return
		}
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command. Called once by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")

	rootCmd.PersistentFlags().Bool("parallel", false, "run checkers in parallel rather than sequentially")
	rootCmd.PersistentFlags().Int("nthreads", 0, "worker count for parallel mode (0 selects a runtime default)")
	rootCmd.PersistentFlags().Float64("timeout", 0, "hard timeout in seconds (0 disables it)")
	rootCmd.PersistentFlags().Bool("construction", true, "enable the construction checker")
	rootCmd.PersistentFlags().Bool("alternating", true, "enable the alternating checker")
	rootCmd.PersistentFlags().Bool("simulation", true, "enable the simulation checker")
	rootCmd.PersistentFlags().Bool("graph-rewrite", false, "enable the graph-rewrite checker")
	rootCmd.PersistentFlags().Float64("tolerance", 2e-13, "numerical tolerance for DD weight comparisons")

	rootCmd.PersistentFlags().Bool("transform-dynamic-circuit", false, "rewrite mid-circuit measurement/reset into a unitary-only form")
	rootCmd.PersistentFlags().Bool("reconstruct-swaps", true, "recognize CX-CX-CX runs as SWAP")
	rootCmd.PersistentFlags().Bool("backpropagate-output-permutation", false, "push the output permutation back to the input side")
	rootCmd.PersistentFlags().Bool("elide-permutations", true, "absorb permutation-only gates into the tracked layout")
	rootCmd.PersistentFlags().Bool("fuse-single-qubit-gates", true, "fuse runs of single-qubit gates into one compound gate")
	rootCmd.PersistentFlags().Bool("remove-diagonal-before-measure", false, "drop diagonal gates immediately preceding a terminal measurement")
	rootCmd.PersistentFlags().Bool("reorder-operations", true, "canonically reorder commuting operations")
	rootCmd.PersistentFlags().Bool("strip-idle-qubits", true, "drop qubits idle in both circuits")
	rootCmd.PersistentFlags().Bool("align-ancillaries", true, "pad circuits to a common ancillary layout")
	rootCmd.PersistentFlags().Bool("remove-final-measurements", true, "drop terminal measurements and mark the qubit garbage")

	rootCmd.PersistentFlags().String("construction-scheme", "sequential", "application scheme for the construction checker")
	rootCmd.PersistentFlags().String("alternating-scheme", "proportional", "application scheme for the alternating checker")
	rootCmd.PersistentFlags().String("simulation-scheme", "sequential", "application scheme for the simulation checker")
	rootCmd.PersistentFlags().String("profile", "", "path to a gate-cost profile file for the GateCost scheme")

	rootCmd.PersistentFlags().Float64("trace-threshold", 1e-8, "identity-proximity threshold for matrix comparisons")
	rootCmd.PersistentFlags().Bool("partial", false, "check partial equivalence (measurement distributions on non-garbage qubits)")

	rootCmd.PersistentFlags().Float64("fidelity-threshold", 1e-8, "fidelity threshold for vector comparisons")
	rootCmd.PersistentFlags().Int("max-sims", 16, "maximum number of simulation attempts")
	rootCmd.PersistentFlags().String("state-type", "computational_basis", "stimulus family: computational_basis, single_qubit_basis, stabilizer")
	rootCmd.PersistentFlags().Uint64("seed", 0, "stimulus PRNG seed (0 draws a nondeterministic seed)")

	rootCmd.PersistentFlags().Int("additional-instantiations", 0, "extra random instantiations for parameterized circuits")
	rootCmd.PersistentFlags().Float64("param-tolerance", 1e-12, "numerical tolerance for parameterized checks (recorded in the options; no checker reads it)")
}

func getFlag(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func getString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func getFloat(cmd *cobra.Command, name string) float64 {
	v, _ := cmd.Flags().GetFloat64(name)
	return v
}

func getInt(cmd *cobra.Command, name string) int {
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func getUint64(cmd *cobra.Command, name string) uint64 {
	v, _ := cmd.Flags().GetUint64(name)
	return v
}

// buildOptions assembles config.Options from the flags bound on cmd,
// starting from config.Default so any flag neither set nor recognized still
// leaves a sane baseline.
func buildOptions(cmd *cobra.Command) (config.Options, error) {
	// Merge the command's own and inherited persistent flags into cmd.Flags()
	// so the getters below also see them before cobra has parsed a command line.
	cmd.InheritedFlags()
	opt := config.Default()

	opt.Execution.Parallel = getFlag(cmd, "parallel")
	if n := getInt(cmd, "nthreads"); n > 0 {
		opt.Execution.NThreads = n
	}
	opt.Execution.TimeoutSeconds = getFloat(cmd, "timeout")
	opt.Execution.RunConstructionChecker = getFlag(cmd, "construction")
	opt.Execution.RunAlternatingChecker = getFlag(cmd, "alternating")
	opt.Execution.RunSimulationChecker = getFlag(cmd, "simulation")
	opt.Execution.RunGraphRewriteChecker = getFlag(cmd, "graph-rewrite")
	opt.Execution.NumericalTolerance = getFloat(cmd, "tolerance")

	opt.Optimizations.TransformDynamicCircuit = getFlag(cmd, "transform-dynamic-circuit")
	opt.Optimizations.ReconstructSwaps = getFlag(cmd, "reconstruct-swaps")
	opt.Optimizations.BackpropagateOutputPermutation = getFlag(cmd, "backpropagate-output-permutation")
	opt.Optimizations.ElidePermutations = getFlag(cmd, "elide-permutations")
	opt.Optimizations.FuseSingleQubitGates = getFlag(cmd, "fuse-single-qubit-gates")
	opt.Optimizations.RemoveDiagonalBeforeMeasure = getFlag(cmd, "remove-diagonal-before-measure")
	opt.Optimizations.ReorderOperations = getFlag(cmd, "reorder-operations")
	opt.Optimizations.StripIdleQubits = getFlag(cmd, "strip-idle-qubits")
	opt.Optimizations.AlignAncillaries = getFlag(cmd, "align-ancillaries")
	opt.Optimizations.RemoveFinalMeasurements = getFlag(cmd, "remove-final-measurements")

	var err error
	if opt.Application.ConstructionScheme, err = parseSchemeTag(getString(cmd, "construction-scheme")); err != nil {
		return opt, err
	}
	if opt.Application.AlternatingScheme, err = parseSchemeTag(getString(cmd, "alternating-scheme")); err != nil {
		return opt, err
	}
	if opt.Application.SimulationScheme, err = parseSchemeTag(getString(cmd, "simulation-scheme")); err != nil {
		return opt, err
	}
	opt.Application.ProfilePath = getString(cmd, "profile")

	opt.Functionality.TraceThreshold = getFloat(cmd, "trace-threshold")
	opt.Functionality.CheckPartialEquivalence = getFlag(cmd, "partial")

	opt.Simulation.FidelityThreshold = getFloat(cmd, "fidelity-threshold")
	opt.Simulation.MaxSims = getInt(cmd, "max-sims")
	if opt.Simulation.StateType, err = parseStimulusKind(getString(cmd, "state-type")); err != nil {
		return opt, err
	}
	opt.Simulation.Seed = getUint64(cmd, "seed")

	opt.Parameterized.AdditionalInstantiations = getInt(cmd, "additional-instantiations")
	opt.Parameterized.Tolerance = getFloat(cmd, "param-tolerance")

	return opt, nil
}

func parseSchemeTag(s string) (scheme.Tag, error) {
	switch s {
	case "sequential":
		return scheme.Sequential, nil
	case "one_to_one":
		return scheme.OneToOne, nil
	case "proportional":
		return scheme.Proportional, nil
	case "gate_cost":
		return scheme.GateCost, nil
	case "lookahead":
		return scheme.Lookahead, nil
	default:
		return scheme.Sequential, fmt.Errorf("unknown application scheme %q", s)
	}
}

func parseStimulusKind(s string) (stimulus.Kind, error) {
	switch s {
	case "computational_basis":
		return stimulus.ComputationalBasis, nil
	case "single_qubit_basis":
		return stimulus.SingleQubitBasis, nil
	case "stabilizer":
		return stimulus.Stabilizer, nil
	default:
		return stimulus.ComputationalBasis, fmt.Errorf("unknown stimulus state type %q", s)
	}
}
