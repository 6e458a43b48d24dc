package sat

// conflict describes a falsified clause discovered during propagation. It is
// either a materialized Clause or, per the binary-clause specialization
// documented on Clause, a pair of literals belonging
// to a binary clause that was never allocated as a *Clause at all.
type conflict struct {
	cla  *Clause
	lits [2]Literal // valid only when cla == nil
}

func clauseConflict(c *Clause) *conflict {
	return &conflict{cla: c}
}

func binaryConflict(a, b Literal) *conflict {
	return &conflict{lits: [2]Literal{a, b}}
}

// explain returns the set of currently-true literals responsible for the
// conflict, mirroring Clause.ExplainFailure's convention of returning the
// opposite of every (false) clause literal.
func (cf *conflict) explain(s *Solver) []Literal {
	if cf.cla != nil {
		return cf.cla.ExplainFailure(s)
	}
	s.tmpReason = s.tmpReason[:0]
	s.tmpReason = append(s.tmpReason, cf.lits[0].Opposite(), cf.lits[1].Opposite())
	return s.tmpReason
}
