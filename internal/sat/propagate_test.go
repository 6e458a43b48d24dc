package sat

import "testing"

func TestPropagate_chainedBinaryImplication(t *testing.T) {
	s := NewDefaultSolver()
	a, b, c := s.NewVar(), s.NewVar(), s.NewVar()

	if err := s.AddBinaryClause(NegativeLiteral(a), PositiveLiteral(b)); err != nil {
		t.Fatalf("AddBinaryClause: %s", err)
	}
	if err := s.AddBinaryClause(NegativeLiteral(b), PositiveLiteral(c)); err != nil {
		t.Fatalf("AddBinaryClause: %s", err)
	}

	s.assume(PositiveLiteral(a))
	if cf := s.propagate(); cf != nil {
		t.Fatalf("propagate() = conflict, want nil")
	}
	if got := s.VarValue(b); got != True {
		t.Errorf("VarValue(b) = %v, want %v (a -> b)", got, True)
	}
	if got := s.VarValue(c); got != True {
		t.Errorf("VarValue(c) = %v, want %v (a -> b -> c)", got, True)
	}
}

func TestPropagate_forcesRemainingLiteralOfClause(t *testing.T) {
	s := NewDefaultSolver()
	a, b, c := s.NewVar(), s.NewVar(), s.NewVar()

	if err := s.AddClause([]Literal{PositiveLiteral(a), PositiveLiteral(b), PositiveLiteral(c)}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}

	s.assume(NegativeLiteral(a))
	if cf := s.propagate(); cf != nil {
		t.Fatalf("propagate() after !a = conflict, want nil")
	}
	if got := s.VarValue(c); got != Unknown {
		t.Fatalf("VarValue(c) after only !a = %v, want Unknown (b still free)", got)
	}

	s.assume(NegativeLiteral(b))
	cf := s.propagate()
	if cf != nil {
		t.Fatalf("propagate() after !a, !b = conflict, want nil (c must be forced)")
	}
	if got := s.VarValue(c); got != True {
		t.Errorf("VarValue(c) = %v, want %v (forced by the clause once a and b are false)", got, True)
	}
}

func TestPropagate_detectsBinaryConflict(t *testing.T) {
	s := NewDefaultSolver()
	a, b, c := s.NewVar(), s.NewVar(), s.NewVar()

	if err := s.AddBinaryClause(NegativeLiteral(a), PositiveLiteral(b)); err != nil {
		t.Fatalf("AddBinaryClause: %s", err)
	}
	if err := s.AddBinaryClause(NegativeLiteral(a), PositiveLiteral(c)); err != nil {
		t.Fatalf("AddBinaryClause: %s", err)
	}
	if err := s.AddBinaryClause(NegativeLiteral(b), NegativeLiteral(c)); err != nil {
		t.Fatalf("AddBinaryClause: %s", err)
	}

	s.assume(PositiveLiteral(a))
	cf := s.propagate()
	if cf == nil {
		t.Fatalf("propagate() = nil, want a conflict (a forces both b and c, violating !b|!c)")
	}

	lits := cf.explain(s)
	if len(lits) != 2 {
		t.Fatalf("explain() = %v, want 2 literals", lits)
	}
	seen := map[Literal]bool{lits[0]: true, lits[1]: true}
	if !seen[PositiveLiteral(b)] || !seen[PositiveLiteral(c)] {
		t.Errorf("explain() = %v, want {b, c} (the two literals true at conflict time)", lits)
	}
}

func TestPropagate_detectsClauseConflict(t *testing.T) {
	s := NewDefaultSolver()
	a, b, c := s.NewVar(), s.NewVar(), s.NewVar()

	if err := s.AddClause([]Literal{PositiveLiteral(a), PositiveLiteral(b), PositiveLiteral(c)}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}

	s.assume(NegativeLiteral(a))
	s.assume(NegativeLiteral(b))
	s.assume(NegativeLiteral(c))
	cf := s.propagate()
	if cf == nil {
		t.Fatalf("propagate() = nil, want a conflict (all three literals false)")
	}
	if cf.cla == nil {
		t.Errorf("conflict.cla = nil, want the violated 3-literal clause")
	}
}
