package sat

import "testing"

func TestTrail_assumeTracksDecisionLevels(t *testing.T) {
	s := NewDefaultSolver()
	a, b := s.NewVar(), s.NewVar()

	if s.decisionLevel() != 0 {
		t.Fatalf("decisionLevel() = %d, want 0 before any assume", s.decisionLevel())
	}
	s.assume(PositiveLiteral(a))
	if s.decisionLevel() != 1 {
		t.Errorf("decisionLevel() = %d, want 1 after one assume", s.decisionLevel())
	}
	s.assume(PositiveLiteral(b))
	if s.decisionLevel() != 2 {
		t.Errorf("decisionLevel() = %d, want 2 after two assumes", s.decisionLevel())
	}
	if len(s.trail) != 2 {
		t.Errorf("len(trail) = %d, want 2", len(s.trail))
	}
}

func TestTrail_assumeReturnsFalseOnImmediateContradiction(t *testing.T) {
	s := NewDefaultSolver()
	a := s.NewVar()
	if err := s.AddUnitClause(PositiveLiteral(a)); err != nil {
		t.Fatalf("AddUnitClause: %s", err)
	}
	if ok := s.assume(NegativeLiteral(a)); ok {
		t.Errorf("assume(!a) = true, want false (a is already true at level 0)")
	}
}

func TestTrail_cancelUntil_undoesAssignments(t *testing.T) {
	s := NewDefaultSolver()
	a, b := s.NewVar(), s.NewVar()

	s.assume(PositiveLiteral(a))
	s.assume(PositiveLiteral(b))
	if got := s.VarValue(a); got != True {
		t.Fatalf("VarValue(a) = %v, want True before cancel", got)
	}

	s.cancelUntil(0)
	if s.decisionLevel() != 0 {
		t.Fatalf("decisionLevel() = %d, want 0 after cancelUntil(0)", s.decisionLevel())
	}
	if len(s.trail) != 0 {
		t.Errorf("len(trail) = %d, want 0 after cancelUntil(0)", len(s.trail))
	}
	if got := s.VarValue(a); got != Unknown {
		t.Errorf("VarValue(a) = %v, want Unknown after cancelUntil(0)", got)
	}
	if got := s.VarValue(b); got != Unknown {
		t.Errorf("VarValue(b) = %v, want Unknown after cancelUntil(0)", got)
	}
	if r := s.reason[a]; !r.IsNone() {
		t.Errorf("reason[a] = %v, want NoReason after cancel", r)
	}
	if lv := s.level[a]; lv != -1 {
		t.Errorf("level[a] = %d, want -1 after cancel", lv)
	}
}

func TestTrail_cancelUntil_partialBacktrackKeepsLowerLevels(t *testing.T) {
	s := NewDefaultSolver()
	a, b, c := s.NewVar(), s.NewVar(), s.NewVar()

	s.assume(PositiveLiteral(a))
	s.assume(PositiveLiteral(b))
	s.assume(PositiveLiteral(c))

	s.cancelUntil(1)
	if s.decisionLevel() != 1 {
		t.Fatalf("decisionLevel() = %d, want 1", s.decisionLevel())
	}
	if got := s.VarValue(a); got != True {
		t.Errorf("VarValue(a) = %v, want True (below the backtrack level)", got)
	}
	if got := s.VarValue(b); got != Unknown {
		t.Errorf("VarValue(b) = %v, want Unknown (undone by the backtrack)", got)
	}
	if got := s.VarValue(c); got != Unknown {
		t.Errorf("VarValue(c) = %v, want Unknown (undone by the backtrack)", got)
	}
}

func TestTrail_cancelUntil_savesPhaseForDecisionHeuristic(t *testing.T) {
	s := NewDefaultSolver()
	a := s.NewVar()

	s.assume(NegativeLiteral(a))
	s.cancelUntil(0)

	if got := s.order.SavedPhase(a); got != False {
		t.Errorf("SavedPhase(a) = %v, want False (last held value before undo)", got)
	}
}
