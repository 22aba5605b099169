package valuation

// SolverConfig holds the implied-rate solver parameters.
type SolverConfig struct {
	// Tolerance is the absolute PV error at which Newton-Raphson stops.
	Tolerance float64

	// MaxIterations caps the number of Newton steps.
	MaxIterations int

	// InitialGuess is the starting rate (fraction).
	InitialGuess float64

	// MinRate and MaxRate bound every iterate. MinRate must stay above -1.
	MinRate float64
	MaxRate float64

	// DerivativeThreshold is the minimum derivative magnitude.
	// Below this, Newton iteration stops to avoid division by near-zero.
	DerivativeThreshold float64
}

// DefaultSolverConfig provides the default solver values.
var DefaultSolverConfig = SolverConfig{
	Tolerance:           1e-10,
	MaxIterations:       100,
	InitialGuess:        0.10,
	MinRate:             -0.99,
	MaxRate:             10.0,
	DerivativeThreshold: 1e-15,
}

// solverCfg is the active configuration. Defaults to DefaultSolverConfig.
var solverCfg = DefaultSolverConfig

// SetSolverConfig replaces the active solver configuration.
func SetSolverConfig(c SolverConfig) {
	solverCfg = c
}

// GetSolverConfig returns the active solver configuration.
func GetSolverConfig() SolverConfig {
	return solverCfg
}
