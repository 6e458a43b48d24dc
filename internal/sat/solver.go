// Package sat implements a CDCL (conflict-driven clause learning) boolean
// satisfiability solver: watch-list propagation, first-UIP conflict
// analysis with clause minimization, LBD tracking, a VSIDS-style variable
// heap, Luby restarts and periodic learnt-clause reduction.
package sat

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"
)

// Solver is a single CDCL solver instance. It is not safe for concurrent
// use: every method must be called from one goroutine at a time.
type Solver struct {
	numVars int

	// Clause database. Unit and binary original clauses never become
	// *Clause objects (see the binary-clause specialization documented on
	// Clause); they are logged here purely so WriteDIMACS and GetStats can
	// still account for them.
	constraints       []*Clause
	learnts           []*Clause
	unitConstraints   []Literal
	binaryConstraints [][2]Literal
	clauseInc         float64

	// learntLimit is the current reduce_db activation threshold: once
	// len(learnts)-NumAssigns() reaches it, ReduceDB runs. Grown after every
	// restart by LearntSizeGrowth; reported by GetStats as the active limit.
	learntLimit int

	// Variable ordering and phase memory.
	order *VarOrder

	// Watch lists, indexed by Literal, and the propagation queue.
	watchers  [][]Watcher
	propQueue *Queue[Literal]

	// Assignment state, indexed by Literal (assigns) or Variable (reason,
	// level).
	assigns []LBool
	reason  []Reason
	level   []int

	// Trail: an append-only log of assigned literals, with trailLim holding
	// the trail length at the start of each decision level.
	trail    []Literal
	trailLim []int

	// rootLevel is the decision level assumptions are pushed to; a conflict
	// at it ends the search with StatusUnsat for the current assumptions,
	// and makes the solver permanently unsatisfiable only when it is 0.
	rootLevel int

	unsat bool

	params     Params
	rng        *rand.Rand
	msgHandler MessageHandler
	startTime  time.Time
	counters   struct {
		restarts     int64
		conflicts    int64
		decisions    int64
		propagations int64
	}
	avgLBD EMA

	model []LBool

	// Scratch buffers shared across calls to avoid reallocating on every
	// propagation/analysis/add.
	seen        ResetSet
	tmpWatchers []Watcher
	tmpLearnts  []Literal
	tmpReason   []Literal
	tmpStack    []Literal
	tmpClause   []Literal
	tmpVars     []Variable
	lbdMark     []bool
}

// NewSolver returns a solver configured with p.
func NewSolver(p Params) *Solver {
	return &Solver{
		params:    p,
		clauseInc: 1,
		propQueue: NewQueue[Literal](128),
		order:     NewVarOrder(p.VarDecay, p.PhaseSaving),
		rng:       rand.New(rand.NewSource(p.RandomSeed)),
	}
}

// NewDefaultSolver returns a solver configured with DefaultParams.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultParams)
}

// NewVar introduces a new variable and returns its handle.
func (s *Solver) NewVar() Variable {
	v := Variable(s.numVars)
	s.numVars++
	s.watchers = append(s.watchers, nil, nil)
	s.assigns = append(s.assigns, Unknown, Unknown)
	s.reason = append(s.reason, NoReason)
	s.level = append(s.level, -1)
	s.seen.Expand()
	s.order.Push(v)
	return v
}

func (s *Solver) NumVariables() int { return s.numVars }
func (s *Solver) NumAssigns() int   { return len(s.trail) }
func (s *Solver) NumConstraints() int {
	return len(s.constraints) + len(s.binaryConstraints) + len(s.unitConstraints)
}
func (s *Solver) NumLearnts() int { return len(s.learnts) }

// VarValue returns v's current truth value (Unknown if unassigned).
func (s *Solver) VarValue(v Variable) LBool {
	return s.assigns[PositiveLiteral(v)]
}

// LitValue returns l's current truth value.
func (s *Solver) LitValue(l Literal) LBool {
	return s.assigns[l]
}

func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

func (s *Solver) watch(l Literal, w Watcher) {
	s.watchers[l] = append(s.watchers[l], w)
}

// unwatch detaches clause c from l's watch list. Binary (literal) watchers
// are never detached individually: a binary clause lives for the lifetime
// of the solver once added.
func (s *Solver) unwatch(l Literal, c *Clause) {
	ws := s.watchers[l]
	j := 0
	for i := range ws {
		if !(ws[i].kind == reasonClause && ws[i].cla == c) {
			ws[j] = ws[i]
			j++
		}
	}
	s.watchers[l] = ws[:j]
}

func (s *Solver) enqueue(l Literal, r Reason) bool {
	switch s.LitValue(l) {
	case False:
		return false
	case True:
		return true
	default:
		v := l.VarID()
		s.assigns[l] = True
		s.assigns[l.Opposite()] = False
		s.level[v] = s.decisionLevel()
		s.reason[v] = r
		s.trail = append(s.trail, l)
		s.propQueue.Push(l)
		if !r.IsNone() {
			s.counters.propagations++
		}
		return true
	}
}

// AddClause adds a clause to the problem. It must be called at decision
// level 0. The clause is simplified (duplicates removed, tautologies and
// clauses already satisfied at level 0 dropped, literals already false at
// level 0 removed) before being stored.
func (s *Solver) AddClause(lits []Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, must be 0", s.decisionLevel())
	}
	if s.unsat {
		return nil
	}

	for _, l := range lits {
		if l.VarID() >= s.numVars {
			return fmt.Errorf("sat: AddClause: literal %s refers to a variable not yet introduced by NewVar", l)
		}
	}

	buf := append(s.tmpClause[:0], lits...)
	sort.Slice(buf, func(i, j int) bool { return buf[i] < buf[j] })

	k := 0
	var prev Literal
	havePrev := false
	for _, l := range buf {
		if havePrev && l == prev {
			continue
		}
		prev, havePrev = l, true
		if k > 0 && buf[k-1] == l.Opposite() {
			s.tmpClause = buf
			return nil // tautology: trivially satisfiable, nothing to add
		}
		switch s.LitValue(l) {
		case True:
			s.tmpClause = buf
			return nil // already satisfied at the root level
		case False:
			continue
		}
		buf[k] = l
		k++
	}
	buf = buf[:k]
	s.tmpClause = buf

	if len(buf) == 0 {
		s.unsat = true
		return nil
	}

	switch len(buf) {
	case 1:
		s.unitConstraints = append(s.unitConstraints, buf[0])
		if !s.enqueue(buf[0], NoReason) {
			s.unsat = true
		}
	case 2:
		a, b := buf[0], buf[1]
		s.binaryConstraints = append(s.binaryConstraints, [2]Literal{a, b})
		s.watch(a.Opposite(), LiteralReason(b))
		s.watch(b.Opposite(), LiteralReason(a))
	default:
		c := newStoredClause(s, buf, false)
		s.constraints = append(s.constraints, c)
	}
	return nil
}

// AddUnitClause is a convenience wrapper around AddClause for a single
// literal.
func (s *Solver) AddUnitClause(l Literal) error {
	return s.AddClause([]Literal{l})
}

// AddBinaryClause is a convenience wrapper around AddClause for a clause of
// exactly two literals.
func (s *Solver) AddBinaryClause(a, b Literal) error {
	return s.AddClause([]Literal{a, b})
}

func (s *Solver) recordLearntClause(learnt []Literal, lbd int) {
	switch len(learnt) {
	case 1:
		s.enqueue(learnt[0], NoReason)
	case 2:
		a, b := learnt[0], learnt[1]
		s.watch(a.Opposite(), LiteralReason(b))
		s.watch(b.Opposite(), LiteralReason(a))
		s.enqueue(a, LiteralReason(b.Opposite()))
	default:
		c := newStoredClause(s, learnt, true)
		c.lbd = lbd
		s.learnts = append(s.learnts, c)
		s.enqueue(learnt[0], ClauseReason(c))
	}
}

// propagate runs unit propagation (BCP) to a fixed point, returning the
// conflict it found or nil if the queue drained cleanly.
func (s *Solver) propagate() *conflict {
	for !s.propQueue.IsEmpty() {
		l := s.propQueue.Pop()

		ws := s.watchers[l]
		s.tmpWatchers = append(s.tmpWatchers[:0], ws...)
		s.watchers[l] = s.watchers[l][:0]

		for i := 0; i < len(s.tmpWatchers); i++ {
			w := s.tmpWatchers[i]

			switch w.kind {
			case reasonLiteral:
				other := w.lit
				switch s.LitValue(other) {
				case True:
					s.watch(l, w)
				case False:
					s.watch(l, w)
					s.watchers[l] = append(s.watchers[l], s.tmpWatchers[i+1:]...)
					s.propQueue.Clear()
					return binaryConflict(l.Opposite(), other)
				default:
					if s.enqueue(other, LiteralReason(l)) {
						s.watch(l, w)
					} else {
						s.watch(l, w)
						s.watchers[l] = append(s.watchers[l], s.tmpWatchers[i+1:]...)
						s.propQueue.Clear()
						return binaryConflict(l.Opposite(), other)
					}
				}
			case reasonClause:
				// c.propagate re-registers its own watcher (possibly at a
				// new literal), so we must not also append w here.
				if !w.cla.propagate(s, l) {
					s.watchers[l] = append(s.watchers[l], s.tmpWatchers[i+1:]...)
					s.propQueue.Clear()
					return clauseConflict(w.cla)
				}
			}
		}
	}
	return nil
}

// analyze performs first-UIP conflict-driven clause learning starting from
// confl, returning the (minimized) learnt clause, the level to backtrack to,
// and the learnt clause's LBD. The learnt clause holds the UIP at position 0
// and its highest-level other literal at position 1.
func (s *Solver) analyze(confl *conflict) ([]Literal, int, int) {
	implicationPoints := 0
	s.tmpLearnts = append(s.tmpLearnts[:0], Literal(-1))
	nextLiteral := len(s.trail) - 1
	s.seen.Clear()
	backtrackLevel := 0

	lits := confl.explain(s)
	l := Literal(-1)

	for {
		for _, q := range lits {
			v := q.VarID()
			if s.seen.Contains(v) {
				continue
			}
			s.seen.Add(v)
			s.bumpVarActivity(Variable(v))

			if s.level[v] == s.decisionLevel() {
				implicationPoints++
				continue
			}

			s.tmpLearnts = append(s.tmpLearnts, q.Opposite())
			if lv := s.level[v]; lv > backtrackLevel {
				backtrackLevel = lv
			}
		}

		for {
			l = s.trail[nextLiteral]
			nextLiteral--
			if s.seen.Contains(l.VarID()) {
				break
			}
		}

		implicationPoints--
		if implicationPoints <= 0 {
			break
		}
		lits = s.reason[l.VarID()].explainAssign(s)
	}

	s.tmpLearnts[0] = l.Opposite()
	learnt := s.minimizeLearnt(s.tmpLearnts)

	// Move the highest-level literal after the UIP to position 1, where it
	// becomes the second watched literal; its level is the backtrack level.
	for i := 1; i < len(learnt); i++ {
		if lv := s.level[learnt[i].VarID()]; i == 1 || lv > backtrackLevel {
			learnt[1], learnt[i] = learnt[i], learnt[1]
			backtrackLevel = lv
		}
	}
	lbd := s.countDistinctLevels(learnt)
	return learnt, backtrackLevel, lbd
}

// minimizeLearnt drops literals of learnt[1:] whose presence is redundant:
// every antecedent of the literal's assignment is already implied by the
// rest of the clause. This is self-subsuming resolution against the reason
// graph.
func (s *Solver) minimizeLearnt(learnt []Literal) []Literal {
	k := 1
	for i := 1; i < len(learnt); i++ {
		l := learnt[i]
		if s.litRedundant(l) {
			continue
		}
		learnt[k] = l
		k++
	}
	return learnt[:k]
}

func (s *Solver) litRedundant(l Literal) bool {
	if s.reason[l.VarID()].kind == reasonNone {
		return false
	}

	s.tmpStack = append(s.tmpStack[:0], l)
	for len(s.tmpStack) > 0 {
		cur := s.tmpStack[len(s.tmpStack)-1]
		s.tmpStack = s.tmpStack[:len(s.tmpStack)-1]

		r := s.reason[cur.VarID()]
		switch r.kind {
		case reasonLiteral:
			if !s.markMinimizationAncestor(r.lit) {
				return false
			}
		case reasonClause:
			for _, x := range r.cla.literals[1:] {
				if !s.markMinimizationAncestor(x.Opposite()) {
					return false
				}
			}
		}
	}
	return true
}

// markMinimizationAncestor reports whether antecedent a is already
// accounted for (seen, or fixed at level 0), pushing it onto the
// minimization stack for further exploration otherwise. It returns false
// when a is a decision literal that breaks redundancy.
func (s *Solver) markMinimizationAncestor(a Literal) bool {
	v := a.VarID()
	if s.seen.Contains(v) || s.level[v] == 0 {
		return true
	}
	if s.reason[v].kind == reasonNone {
		return false
	}
	s.seen.Add(v)
	s.tmpStack = append(s.tmpStack, a)
	return true
}

// countDistinctLevels computes the LBD (literal block distance) of lits:
// the number of distinct decision levels represented among them.
func (s *Solver) countDistinctLevels(lits []Literal) int {
	needed := s.decisionLevel() + 1
	if cap(s.lbdMark) < needed {
		s.lbdMark = make([]bool, needed)
	} else {
		s.lbdMark = s.lbdMark[:needed]
		for i := range s.lbdMark {
			s.lbdMark[i] = false
		}
	}
	count := 0
	for _, l := range lits {
		lv := s.level[l.VarID()]
		if lv >= 0 && !s.lbdMark[lv] {
			s.lbdMark[lv] = true
			count++
		}
	}
	return count
}

func (s *Solver) bumpClauseActivity(c *Clause) {
	c.activity += s.clauseInc
	if c.activity > 1e100 {
		s.clauseInc *= 1e-100
		for _, l := range s.learnts {
			l.activity *= 1e-100
		}
	}
}

func (s *Solver) bumpVarActivity(v Variable) {
	s.order.Bump(v)
}

func (s *Solver) decayClauseActivity() {
	s.clauseInc *= s.params.ClauseDecay
}

func (s *Solver) decayVarActivity() {
	s.order.Decay()
}

func (s *Solver) undoOne() {
	l := s.trail[len(s.trail)-1]
	v := l.VarID()

	s.order.Reinsert(Variable(v), Lift(l.IsPositive()))
	s.assigns[l] = Unknown
	s.assigns[l.Opposite()] = Unknown
	s.reason[v] = NoReason
	s.level[v] = -1

	s.trail = s.trail[:len(s.trail)-1]
}

func (s *Solver) cancel() {
	n := len(s.trail) - s.trailLim[len(s.trailLim)-1]
	for ; n > 0; n-- {
		s.undoOne()
	}
	s.trailLim = s.trailLim[:len(s.trailLim)-1]
}

func (s *Solver) cancelUntil(level int) {
	for s.decisionLevel() > level {
		s.cancel()
	}
}

func (s *Solver) assume(l Literal) bool {
	s.trailLim = append(s.trailLim, len(s.trail))
	return s.enqueue(l, NoReason)
}

// Simplify simplifies the clause database against the root-level
// assignment, removing satisfied clauses and falsified literals, and
// rebuilds the variable heap over the variables still unassigned. It must
// be called at decision level 0 with an empty propagation queue.
func (s *Solver) Simplify() bool {
	if s.decisionLevel() != 0 {
		panic("sat: Simplify called away from the root decision level")
	}
	if !s.propQueue.IsEmpty() {
		panic("sat: Simplify called with a non-empty propagation queue")
	}
	if s.unsat {
		return false
	}
	if cf := s.propagate(); cf != nil {
		s.unsat = true
		return false
	}

	s.simplifyClauseSet(&s.learnts)
	s.simplifyClauseSet(&s.constraints)

	vars := s.tmpVars[:0]
	for v := 0; v < s.numVars; v++ {
		if s.VarValue(Variable(v)) == Unknown {
			vars = append(vars, Variable(v))
		}
	}
	s.tmpVars = vars
	s.order.Rebuild(vars)

	return true
}

func (s *Solver) simplifyClauseSet(set *[]*Clause) {
	clauses := *set
	j := 0
	for i := 0; i < len(clauses); i++ {
		if clauses[i].Simplify(s) {
			clauses[i].Delete(s)
		} else {
			clauses[j] = clauses[i]
			j++
		}
	}
	*set = clauses[:j]
}

// glueLBD is the literal block distance at or below which a learnt clause is
// considered a "glue" clause and is never discarded by ReduceDB.
const glueLBD = 2

// ReduceDB discards the least active half of the learnt clauses, and any
// clause in the remaining half whose activity is below clauseInc divided by
// the number of learnt clauses. In both halves it keeps clauses that are
// currently a propagation reason, glue clauses, and protected clauses (whose
// flag it clears).
func (s *Solver) ReduceDB() {
	if len(s.learnts) == 0 {
		return
	}
	lim := s.clauseInc / float64(len(s.learnts))

	sort.Slice(s.learnts, func(i, j int) bool {
		return s.learnts[i].activity < s.learnts[j].activity
	})

	i, j := 0, 0
	half := len(s.learnts) / 2
	for ; i < half; i++ {
		c := s.learnts[i]
		if c.locked(s) || c.protected || c.lbd <= glueLBD {
			c.protected = false
			s.learnts[j] = c
			j++
		} else {
			c.Delete(s)
		}
	}
	for ; i < len(s.learnts); i++ {
		c := s.learnts[i]
		if c.protected || c.lbd <= glueLBD {
			c.protected = false
			s.learnts[j] = c
			j++
		} else if !c.locked(s) && c.activity < lim {
			c.Delete(s)
		} else {
			s.learnts[j] = c
			j++
		}
	}
	s.learnts = s.learnts[:j]
}

func (s *Solver) pickBranchLiteral() (Literal, bool) {
	for {
		v, ok := s.order.PopMax()
		if !ok {
			return 0, false
		}
		if s.VarValue(v) != Unknown {
			continue
		}
		return s.decideLiteralFor(v), true
	}
}

func (s *Solver) decideLiteralFor(v Variable) Literal {
	if s.params.RandomVarFreq > 0 && s.rng.Float64() < s.params.RandomVarFreq {
		return s.randomLiteral(v)
	}
	if s.params.PhaseSaving {
		switch s.order.SavedPhase(v) {
		case True:
			return PositiveLiteral(v)
		case False:
			return NegativeLiteral(v)
		}
	}
	switch s.params.Polarity {
	case PolarityPositive:
		return PositiveLiteral(v)
	case PolarityRandom:
		return s.randomLiteral(v)
	default:
		return NegativeLiteral(v)
	}
}

func (s *Solver) randomLiteral(v Variable) Literal {
	if s.rng.Intn(2) == 0 {
		return NegativeLiteral(v)
	}
	return PositiveLiteral(v)
}

func (s *Solver) shouldStop() bool {
	if s.params.MaxConflicts >= 0 && s.counters.conflicts >= s.params.MaxConflicts {
		return true
	}
	if s.params.Timeout >= 0 && time.Since(s.startTime) >= s.params.Timeout {
		return true
	}
	return false
}

// search runs the main CDCL loop until it hits confBudget conflicts (a
// restart boundary), finds a model, proves unsatisfiability, or the
// solver's overall stop condition fires.
func (s *Solver) search(confBudget int64) Status {
	if s.unsat {
		return StatusUnsat
	}
	s.counters.restarts++
	if s.msgHandler != nil {
		s.msgHandler.Message(s.GetStats())
	}
	var conflictsThisRestart int64

	for {
		if s.shouldStop() {
			return StatusUnknown
		}

		if cf := s.propagate(); cf != nil {
			s.counters.conflicts++
			conflictsThisRestart++

			if s.decisionLevel() == s.rootLevel {
				if s.rootLevel == 0 {
					s.unsat = true
				}
				return StatusUnsat
			}

			learnt, backtrackLevel, lbd := s.analyze(cf)
			if backtrackLevel < s.rootLevel {
				backtrackLevel = s.rootLevel
			}
			s.cancelUntil(backtrackLevel)
			s.recordLearntClause(learnt, lbd)
			s.avgLBD.Add(float64(lbd))

			s.decayClauseActivity()
			s.decayVarActivity()
			continue
		}

		if s.decisionLevel() == 0 {
			s.Simplify()
		}

		if len(s.learnts)-s.NumAssigns() >= s.learntLimit {
			s.ReduceDB()
		}

		if s.NumAssigns() == s.numVars {
			s.saveModel()
			s.cancelUntil(s.rootLevel)
			return StatusSat
		}

		if conflictsThisRestart >= confBudget {
			s.cancelUntil(s.rootLevel)
			return StatusUnknown
		}

		l, ok := s.pickBranchLiteral()
		if !ok {
			s.saveModel()
			s.cancelUntil(s.rootLevel)
			return StatusSat
		}
		s.counters.decisions++
		s.assume(l)
	}
}

// Solve searches for a satisfying assignment under the given assumptions
// (which may be empty), returning StatusSat, StatusUnsat or StatusUnknown
// (search budget exhausted; the solver remains usable).
func (s *Solver) Solve(assumptions []Literal) Status {
	if s.unsat {
		return StatusUnsat
	}

	s.cancelUntil(0)
	s.startTime = time.Now()
	if s.msgHandler != nil {
		s.msgHandler.Header()
	}

	s.rootLevel = 0
	consistent := true
	for _, a := range assumptions {
		if !s.assume(a) || s.propagate() != nil {
			consistent = false
			break
		}
		s.rootLevel++
	}

	status := StatusUnknown
	if !consistent {
		status = StatusUnsat
	} else {
		s.learntLimit = int(float64(s.NumConstraints()) * s.params.LearntSizeFactor)
		if s.learntLimit < 16 {
			s.learntLimit = 16
		}
		restart := 0
		for status == StatusUnknown {
			confBudget := int64(luby(2, restart) * float64(s.params.RestartBase))
			status = s.search(confBudget)
			restart++
			s.learntLimit += int(float64(s.learntLimit) * s.params.LearntSizeGrowth)
			if s.shouldStop() && status == StatusUnknown {
				break
			}
		}
	}

	if s.msgHandler != nil {
		s.msgHandler.Footer(s.GetStats())
	}
	s.cancelUntil(0)
	return status
}

func (s *Solver) saveModel() {
	if cap(s.model) < s.numVars {
		s.model = make([]LBool, s.numVars)
	}
	s.model = s.model[:s.numVars]
	for v := 0; v < s.numVars; v++ {
		s.model[v] = s.VarValue(Variable(v))
	}
}

// Model returns the value v held in the most recent satisfying assignment
// found by Solve (Unknown if Solve never returned StatusSat, or v did not
// exist at that time).
func (s *Solver) Model(v Variable) LBool {
	if int(v) >= len(s.model) {
		return Unknown
	}
	return s.model[v]
}

// SetMaxConflict sets the solver's conflict budget (a negative value means
// unlimited) and returns the previous value.
func (s *Solver) SetMaxConflict(n int64) int64 {
	prev := s.params.MaxConflicts
	s.params.MaxConflicts = n
	return prev
}

// RegisterMessageHandler installs h to receive progress reports during
// Solve. A nil handler (the zero-value Solver's default) disables reporting.
func (s *Solver) RegisterMessageHandler(h MessageHandler) {
	s.msgHandler = h
}

// GetStats returns a snapshot of the solver's progress counters.
func (s *Solver) GetStats() Stats {
	elapsed := time.Duration(0)
	if !s.startTime.IsZero() {
		elapsed = time.Since(s.startTime)
	}
	return Stats{
		Restarts:       s.counters.restarts,
		Variables:      s.numVars,
		ConstrClauses:  s.NumConstraints(),
		ConstrLiterals: s.constrLiteralCount(),
		LearntClauses:  len(s.learnts),
		LearntLiterals: s.learntLiteralCount(),
		Conflicts:      s.counters.conflicts,
		Decisions:      s.counters.decisions,
		Propagations:   s.counters.propagations,
		ConflictLimit:  s.params.MaxConflicts,
		LearntLimit:    s.learntLimit,
		AvgLBD:         s.avgLBD.Val(),
		Elapsed:        elapsed,
	}
}

func (s *Solver) constrLiteralCount() int {
	n := len(s.unitConstraints) + 2*len(s.binaryConstraints)
	for _, c := range s.constraints {
		n += len(c.literals)
	}
	return n
}

func (s *Solver) learntLiteralCount() int {
	n := 0
	for _, c := range s.learnts {
		n += len(c.literals)
	}
	return n
}

// WriteDIMACS writes the current (simplified) problem in DIMACS CNF format.
// The written formula is logically equivalent to the original input, not
// necessarily textually identical: clauses found satisfied at the root
// level are dropped, and falsified literals are removed from surviving
// clauses, both changes that preserve satisfiability.
func (s *Solver) WriteDIMACS(w io.Writer) error {
	total := len(s.unitConstraints) + len(s.binaryConstraints) + len(s.constraints)
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", s.numVars, total); err != nil {
		return err
	}
	for _, l := range s.unitConstraints {
		if _, err := fmt.Fprintf(w, "%s 0\n", dimacsLiteral(l)); err != nil {
			return err
		}
	}
	for _, p := range s.binaryConstraints {
		if _, err := fmt.Fprintf(w, "%s %s 0\n", dimacsLiteral(p[0]), dimacsLiteral(p[1])); err != nil {
			return err
		}
	}
	for _, c := range s.constraints {
		for _, l := range c.literals {
			if _, err := fmt.Fprintf(w, "%s ", dimacsLiteral(l)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "0"); err != nil {
			return err
		}
	}
	return nil
}

func dimacsLiteral(l Literal) string {
	v := l.VarID() + 1
	if l.IsPositive() {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("-%d", v)
}
