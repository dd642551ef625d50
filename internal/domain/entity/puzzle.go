package entity

import (
	"fmt"
	"math"
	"math/rand"
)

// Operator is the arithmetic operation of a puzzle question.
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
)

func (o Operator) String() string {
	if o == OpSubtract {
		return "-"
	}
	return "+"
}

// MathPuzzle is a two-operand arithmetic lock. While active it accepts
// digits, a sign toggle, backspace and submit.
type MathPuzzle struct {
	Pos      Vec2
	Size     float64
	A, B     int
	Op       Operator
	Answer   int
	Entry    int  // entered magnitude
	Negative bool // sign toggle
	Active   bool
	Solved   bool
}

// NewMathPuzzle creates a puzzle with fixed operands.
func NewMathPuzzle(pos Vec2, size float64, a, b int, op Operator) *MathPuzzle {
	answer := a + b
	if op == OpSubtract {
		answer = a - b
	}
	return &MathPuzzle{Pos: pos, Size: size, A: a, B: b, Op: op, Answer: answer}
}

// GenerateMathPuzzle rolls two operands in [1, 9] and an operator.
func GenerateMathPuzzle(pos Vec2, size float64, rng *rand.Rand) *MathPuzzle {
	a := 1 + rng.Intn(9)
	b := 1 + rng.Intn(9)
	op := Operator(rng.Intn(2))
	return NewMathPuzzle(pos, size, a, b, op)
}

// Question renders the prompt, e.g. "7 - 3 = ?".
func (p *MathPuzzle) Question() string {
	return fmt.Sprintf("%d %s %d = ?", p.A, p.Op, p.B)
}

// Value is the signed number currently entered.
func (p *MathPuzzle) Value() int {
	if p.Negative {
		return -p.Entry
	}
	return p.Entry
}

// Activate opens the puzzle for input. Solved puzzles stay closed.
func (p *MathPuzzle) Activate() {
	if !p.Solved {
		p.Active = true
	}
}

// maxEntry bounds the entered magnitude; digits that would pass it are dropped.
const maxEntry = math.MaxInt32

// InputDigit appends d to the entered magnitude.
func (p *MathPuzzle) InputDigit(d int) {
	if !p.Active || d < 0 || d > 9 || p.Entry > (maxEntry-d)/10 {
		return
	}
	p.Entry = p.Entry*10 + d
}

// ToggleSign flips the sign of the entry.
func (p *MathPuzzle) ToggleSign() {
	if p.Active {
		p.Negative = !p.Negative
	}
}

// Backspace drops the last entered digit.
func (p *MathPuzzle) Backspace() {
	if p.Active {
		p.Entry /= 10
	}
}

// Submit checks the entry. A correct answer solves and closes the puzzle;
// a wrong one clears the entry and keeps it open.
func (p *MathPuzzle) Submit() bool {
	if !p.Active {
		return false
	}
	if p.Value() == p.Answer {
		p.Solved = true
		p.Active = false
		return true
	}
	p.Entry = 0
	p.Negative = false
	return false
}
