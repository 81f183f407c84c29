package checker

// Config carries the numerical knobs every DD checker variant consults
// (spec section 6's Execution/Functionality/Simulation option groups,
// narrowed to what a checker itself needs).
type Config struct {
	NumericalTolerance      float64
	TraceThreshold          float64
	FidelityThreshold       float64
	CheckPartialEquivalence bool
}
