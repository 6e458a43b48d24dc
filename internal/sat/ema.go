package sat

// EMA is an exponential moving average, used to track the recent trend of
// the LBD of learnt clauses for diagnostic reporting without keeping the
// full history.
type EMA struct {
	decay float64
	value float64
	init  bool
}

// NewEMA returns an EMA that weighs its current value by decay and each new
// sample by 1-decay.
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// Add folds x into the running average.
func (ema *EMA) Add(x float64) {
	if !ema.init {
		ema.init = true
		ema.value = x
		return
	}
	ema.value = ema.decay*ema.value + x*(1-ema.decay)
}

// Val returns the current average, or 0 if no sample was ever added.
func (ema *EMA) Val() float64 {
	return ema.value
}
