package sat

import "fmt"

// Variable is a dense, zero-based handle for a boolean variable known to the
// solver. Variables are created with Solver.NewVar and never reused.
type Variable int

// Literal represents a variable together with a polarity bit, encoded as
// (variable << 1) | negated so that negation is a single XOR and a literal
// fits in one machine word.
type Literal int

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v Variable) Literal {
	return Literal(v << 1)
}

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v Variable) Literal {
	return Literal(v<<1 | 1)
}

// Var returns the variable the literal refers to.
func (l Literal) Var() Variable {
	return Variable(l >> 1)
}

// VarID returns the integer ID of the literal's variable.
func (l Literal) VarID() int {
	return int(l >> 1)
}

// IsPositive returns true if and only if the literal represents the value of
// its boolean variable (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the opposite literal.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("!%d", l.VarID())
}
