package sat

import "strings"

// Clause is a stored clause of three or more literals. Clauses of length
// one are assigned directly at decision level 0 and never materialized;
// clauses of length two are represented purely as a pair of literal-reason
// watchers (see Solver.watch) and never materialized either. A *Clause
// therefore starts with len(literals) >= 3; Simplify may later shrink it by
// removing literals that are False at level 0.
//
// Positions 0 and 1 are the two watched literals (wl0, wl1): neither is
// False under the current assignment unless the clause is conflicting or
// forcing.
type Clause struct {
	activity float64

	// literals backs onto a pooled slice obtained from allocSlice; sliceRef
	// is kept around so Delete can return it to the pool.
	literals []Literal
	sliceRef *[]Literal

	// prevPos speeds up the search for a new literal to watch by resuming
	// from the position at which the previous watch was swapped in. Always
	// in [2, len(literals)-1] once the clause has been propagated at least
	// once.
	prevPos int

	// lbd is the literal block distance, refined every time a learnt clause
	// forces an assignment (see updateLBD).
	lbd int

	learnt bool

	// protected marks a clause that took part in a conflict's resolution
	// since the last ReduceDB pass and must survive the next one even if its
	// activity falls in the discarded half; cleared the next time ReduceDB
	// inspects it, so protection lasts exactly one generation.
	protected bool
}

// newStoredClause allocates a Clause for lits (len(lits) >= 3), registers
// its two initial watchers (positions 0 and 1 as given by the caller) and
// returns it. Callers are responsible for having already picked the
// watched positions (AddClause picks any two non-false literals; conflict
// analysis picks the UIP and the highest-level literal).
func newStoredClause(s *Solver, lits []Literal, learnt bool) *Clause {
	ref := allocSlice(len(lits))
	buf := (*ref)[:0]
	buf = append(buf, lits...)

	c := &Clause{
		literals: buf,
		sliceRef: ref,
		prevPos:  2,
		lbd:      len(lits),
		learnt:   learnt,
	}

	s.watch(c.literals[0].Opposite(), ClauseReason(c))
	s.watch(c.literals[1].Opposite(), ClauseReason(c))

	return c
}

// locked reports whether c is currently the reason for an assigned
// variable, in which case it must not be deleted by clause reduction.
func (c *Clause) locked(s *Solver) bool {
	r := s.reason[c.literals[0].VarID()]
	return r.kind == reasonClause && r.cla == c
}

// Delete detaches c from both of its watch lists and returns its backing
// storage to the allocator.
func (c *Clause) Delete(s *Solver) {
	s.unwatch(c.literals[0].Opposite(), c)
	s.unwatch(c.literals[1].Opposite(), c)
	freeSlice(c.sliceRef)
	c.literals = nil
	c.sliceRef = nil
}

// Simplify drops literals already False at level 0 and reports whether the
// clause is now satisfied (a literal is True at level 0) and can be
// removed entirely.
func (c *Clause) Simplify(s *Solver) bool {
	k := 0
	for _, l := range c.literals {
		switch s.LitValue(l) {
		case True:
			return true
		case False:
			// discard
		default:
			c.literals[k] = l
			k++
		}
	}
	c.literals = c.literals[:k]
	return false
}

// propagate updates c after literal l (the opposite of one of c's watched
// literals) has just been assigned True. It returns true if c remains
// satisfiable without a forced assignment failing, false if propagating c
// produced a conflict.
func (c *Clause) propagate(s *Solver, l Literal) bool {
	opp := l.Opposite()

	// Normalize so that the triggering literal sits at position 1: position
	// 0 is then always the literal to potentially enqueue.
	if c.literals[0] == opp {
		c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
	}

	if s.LitValue(c.literals[0]) == True {
		s.watch(l, ClauseReason(c))
		return true
	}

	if c.prevPos >= len(c.literals) {
		c.prevPos = 2
	}

	for i, lit := range c.literals[c.prevPos:] {
		if s.LitValue(lit) != False {
			pos := c.prevPos + i
			c.literals[1], c.literals[pos] = lit, c.literals[1]
			c.prevPos = pos
			s.watch(c.literals[1].Opposite(), ClauseReason(c))
			return true
		}
	}
	for i, lit := range c.literals[2:c.prevPos] {
		if s.LitValue(lit) != False {
			pos := i + 2
			c.literals[1], c.literals[pos] = lit, c.literals[1]
			c.prevPos = pos
			s.watch(c.literals[1].Opposite(), ClauseReason(c))
			return true
		}
	}

	// No other non-false literal found: the clause is unit under
	// c.literals[0], or conflicting if that literal is already False.
	s.watch(l, ClauseReason(c))
	if !s.enqueue(c.literals[0], ClauseReason(c)) {
		return false
	}
	if c.learnt {
		c.updateLBD(s)
	}
	return true
}

// ExplainFailure explains c as a violated (conflicting) clause: every
// literal of c is currently False, so the opposite of each is the set of
// currently-True literals that caused the conflict.
func (c *Clause) ExplainFailure(s *Solver) []Literal {
	c.protected = true
	s.tmpReason = s.tmpReason[:0]
	for _, l := range c.literals {
		s.tmpReason = append(s.tmpReason, l.Opposite())
	}
	if c.learnt {
		s.bumpClauseActivity(c)
	}
	return s.tmpReason
}

// ExplainAssign explains c as the reason a variable was forced: c.literals[0]
// is the implied literal, so the antecedents are the opposites of every
// other (False) literal.
func (c *Clause) ExplainAssign(s *Solver) []Literal {
	c.protected = true
	s.tmpReason = s.tmpReason[:0]
	for _, l := range c.literals[1:] {
		s.tmpReason = append(s.tmpReason, l.Opposite())
	}
	if c.learnt {
		s.bumpClauseActivity(c)
	}
	return s.tmpReason
}

// updateLBD recomputes c's literal block distance and keeps the lower of
// the old and new values.
func (c *Clause) updateLBD(s *Solver) {
	lbd := s.countDistinctLevels(c.literals)
	if lbd < c.lbd {
		c.lbd = lbd
	}
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
