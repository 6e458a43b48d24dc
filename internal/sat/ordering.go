package sat

import "github.com/rhartert/yagh"

// VarOrder is a max-activity variable heap with lazy deletion: PopMax may
// return an already-assigned variable, and the caller is expected to retry.
// The heap itself is the third-party github.com/rhartert/yagh binary heap,
// keyed by negated activity so that yagh's min-heap semantics surface the
// maximum-activity variable first.
type VarOrder struct {
	order *yagh.IntMap[float64]

	scores   []float64 // activity per variable, in [0, 1e100)
	scoreInc float64   // current bump increment, in (0, 1e100)
	decay    float64   // decay factor applied to scoreInc, in (0, 1]

	// phases holds the last value each variable was assigned, surviving
	// backtracking to Unknown. Read by the decision heuristic when phase
	// saving is on.
	phases      []LBool
	phaseSaving bool
}

// NewVarOrder returns an empty VarOrder that decays its bump increment by
// 1/decay on every DecayScores call. When phaseSaving is true, Reinsert
// records the polarity a variable held just before it was unassigned.
func NewVarOrder(decay float64, phaseSaving bool) *VarOrder {
	return &VarOrder{
		order:       yagh.New[float64](0),
		scoreInc:    1,
		decay:       decay,
		phaseSaving: phaseSaving,
	}
}

// Push grows the heap to cover a newly created variable and inserts it with
// zero initial activity and an unknown saved phase.
func (vo *VarOrder) Push(v Variable) {
	for int(v) >= len(vo.scores) {
		vo.scores = append(vo.scores, 0)
		vo.phases = append(vo.phases, Unknown)
		vo.order.GrowBy(1)
	}
	vo.order.Put(int(v), 0)
}

// Reinsert puts v back among the candidates to be selected, keyed by its
// current activity, and records val as v's saved phase if phase saving is
// enabled. The solver calls this on backtrack, val being the value v held
// just before being unassigned.
func (vo *VarOrder) Reinsert(v Variable, val LBool) {
	if vo.phaseSaving {
		vo.phases[v] = val
	}
	vo.order.Put(int(v), -vo.scores[v])
}

// SavedPhase returns the last value v was assigned (Unknown if v has never
// been assigned, or if phase saving is disabled).
func (vo *VarOrder) SavedPhase(v Variable) LBool {
	return vo.phases[v]
}

// PopMax removes and returns the variable with the highest activity. The
// returned variable may already be assigned (lazy deletion); ok is false
// only when the heap is completely empty.
func (vo *VarOrder) PopMax() (Variable, bool) {
	next, ok := vo.order.Pop()
	if !ok {
		return 0, false
	}
	return Variable(next.Elem), true
}

// Bump increases v's activity by the current bump increment, rescaling all
// activities (and the increment) if the bumped value would overflow a
// bounded threshold.
func (vo *VarOrder) Bump(v Variable) {
	newScore := vo.scores[v] + vo.scoreInc
	vo.scores[v] = newScore
	if vo.order.Contains(int(v)) {
		vo.order.Put(int(v), -newScore)
	}
	if newScore > 1e100 {
		vo.rescale()
	}
}

// Decay scales the bump increment by the configured decay factor: the
// increment shrinks over time, so only activity relative between variables
// matters once rescaled.
func (vo *VarOrder) Decay() {
	vo.scoreInc *= vo.decay
	if vo.scoreInc > 1e100 {
		vo.rescale()
	}
}

// Rebuild wholesale-reconstructs the heap over the given set of currently
// unassigned variables, used after a root-level simplification.
func (vo *VarOrder) Rebuild(vars []Variable) {
	vo.order = yagh.New[float64](len(vo.scores))
	for _, v := range vars {
		vo.order.Put(int(v), -vo.scores[v])
	}
}

// Activity returns v's current activity score.
func (vo *VarOrder) Activity(v Variable) float64 {
	return vo.scores[v]
}

func (vo *VarOrder) rescale() {
	vo.scoreInc *= 1e-100
	for v, sc := range vo.scores {
		newScore := sc * 1e-100
		vo.scores[v] = newScore
		if vo.order.Contains(v) {
			vo.order.Put(v, -newScore)
		}
	}
}
