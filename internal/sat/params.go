package sat

import "time"

// PolarityPolicy selects the default value a freshly decided variable is
// assigned when it has no saved phase to fall back on.
type PolarityPolicy int8

const (
	// PolarityNegative always decides the negative literal first.
	PolarityNegative PolarityPolicy = iota
	PolarityPositive
	PolarityRandom
)

// Params configures a Solver.
type Params struct {
	VarDecay      float64
	ClauseDecay   float64
	PhaseSaving   bool
	Polarity      PolarityPolicy
	RandomVarFreq float64 // probability in [0,1] of a purely random decision

	RestartBase int64 // base conflict budget multiplied by the Luby sequence

	LearntSizeFactor float64 // initial reduce_db watermark relative to constraints
	LearntSizeGrowth float64 // watermark growth per restart

	MaxConflicts int64 // <0 means unlimited
	Timeout      time.Duration // <0 means unlimited

	RandomSeed int64
}

// DefaultParams holds reasonable defaults for general-purpose instances.
var DefaultParams = Params{
	VarDecay:         0.95,
	ClauseDecay:      0.999,
	PhaseSaving:      true,
	Polarity:         PolarityPositive,
	RandomVarFreq:    0.02,
	RestartBase:      100,
	LearntSizeFactor: 1.0 / 3.0,
	LearntSizeGrowth: 0.05,
	MaxConflicts:     -1,
	Timeout:          -1,
	RandomSeed:       1,
}

// Status is the outcome of a Solve call.
type Status = LBool

const (
	StatusUnknown Status = Unknown
	StatusSat     Status = True
	StatusUnsat   Status = False
)
