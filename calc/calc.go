// Package calc evaluates infix integer expressions with the shunting-yard
// method: one stack of operands, one of pending operators.
//
// Supported syntax: non-negative integer literals, the binary operators
// + - * /, parentheses and blanks. '*' and '/' bind tighter than '+' and
// '-'; operators of equal precedence associate to the left. Division
// truncates toward zero.
//
// Errors:
//
//   - ErrEmptyExpression   the input holds no tokens.
//   - ErrSyntax            unexpected character, operand or operator.
//   - ErrUnbalanced        unmatched '(' or ')'.
//   - ErrDivisionByZero    a divisor evaluated to zero.
package calc

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrEmptyExpression indicates an input with no tokens.
	ErrEmptyExpression = errors.New("calc: empty expression")
	// ErrSyntax indicates a malformed expression.
	ErrSyntax = errors.New("calc: syntax error")
	// ErrUnbalanced indicates mismatched parentheses.
	ErrUnbalanced = errors.New("calc: unbalanced parentheses")
	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = errors.New("calc: division by zero")
)

// evaluator holds the two stacks and the precedence table of one call.
type evaluator struct {
	prec map[byte]int
	nums []int
	ops  []byte
}

// Evaluate returns the value of expr.
func Evaluate(expr string) (int, error) {
	e := &evaluator{
		prec: map[byte]int{'(': 0, '+': 1, '-': 1, '*': 2, '/': 2},
	}

	expectOperand := true
	tokens := 0
	for i := 0; i < len(expr); {
		ch := expr[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n':
			i++
			continue

		case isDigit(ch):
			j := i
			for j < len(expr) && isDigit(expr[j]) {
				j++
			}
			if !expectOperand {
				return 0, fmt.Errorf("%w: unexpected number at offset %d", ErrSyntax, i)
			}
			v, err := strconv.Atoi(expr[i:j])
			if err != nil {
				return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			e.nums = append(e.nums, v)
			expectOperand = false
			i = j

		case ch == '(':
			if !expectOperand {
				return 0, fmt.Errorf("%w: unexpected '(' at offset %d", ErrSyntax, i)
			}
			e.ops = append(e.ops, ch)
			i++

		case ch == ')':
			if expectOperand {
				return 0, fmt.Errorf("%w: unexpected ')' at offset %d", ErrSyntax, i)
			}
			if err := e.closeGroup(); err != nil {
				return 0, err
			}
			i++

		case isOperator(ch):
			if expectOperand {
				return 0, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, ch, i)
			}
			for len(e.ops) > 0 && e.prec[e.top()] >= e.prec[ch] {
				if err := e.reduce(); err != nil {
					return 0, err
				}
			}
			e.ops = append(e.ops, ch)
			expectOperand = true
			i++

		default:
			return 0, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, ch, i)
		}
		tokens++
	}

	if tokens == 0 {
		return 0, ErrEmptyExpression
	}
	if expectOperand {
		return 0, fmt.Errorf("%w: expression ends with an operator", ErrSyntax)
	}
	for len(e.ops) > 0 {
		if e.top() == '(' {
			return 0, fmt.Errorf("%w: unclosed '('", ErrUnbalanced)
		}
		if err := e.reduce(); err != nil {
			return 0, err
		}
	}

	return e.nums[0], nil
}

// closeGroup reduces back to the matching '(' and drops it.
func (e *evaluator) closeGroup() error {
	for len(e.ops) > 0 && e.top() != '(' {
		if err := e.reduce(); err != nil {
			return err
		}
	}
	if len(e.ops) == 0 {
		return fmt.Errorf("%w: unmatched ')'", ErrUnbalanced)
	}
	e.ops = e.ops[:len(e.ops)-1]

	return nil
}

// reduce applies the top operator to the two top operands.
func (e *evaluator) reduce() error {
	op := e.top()
	e.ops = e.ops[:len(e.ops)-1]
	n := len(e.nums)
	if n < 2 {
		return fmt.Errorf("%w: operator %q lacks operands", ErrSyntax, op)
	}
	a, b := e.nums[n-2], e.nums[n-1]
	e.nums = e.nums[:n-2]

	var v int
	switch op {
	case '+':
		v = a + b
	case '-':
		v = a - b
	case '*':
		v = a * b
	case '/':
		if b == 0 {
			return ErrDivisionByZero
		}
		v = a / b
	}
	e.nums = append(e.nums, v)

	return nil
}

func (e *evaluator) top() byte {
	return e.ops[len(e.ops)-1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isOperator(ch byte) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/'
}
