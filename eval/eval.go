// Package eval evaluates scalar arithmetic expressions over interval-valued
// bindings. Expressions use Go expression syntax — numeric literals,
// identifiers, parentheses, unary +/- and the binary operators + - * / —
// and every subexpression evaluates to a verified interval.
package eval

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"github.com/mlliarm/interval-arithmetic/interval"

	"github.com/benbjohnson/immutable"
)

// Env maps identifiers to interval values. Env is immutable: Bind returns a
// new environment sharing structure with the old one, so environments can
// be read concurrently without coordination.
type Env struct {
	bindings *immutable.Map[string, interval.Interval]
}

// NewEnv creates an environment with no bindings.
func NewEnv() Env {
	return Env{bindings: immutable.NewMap[string, interval.Interval](nil)}
}

// Bind returns a copy of the environment where name maps to v, shadowing
// any previous binding.
func (e Env) Bind(name string, v interval.Interval) Env {
	if e.bindings == nil {
		e = NewEnv()
	}
	return Env{bindings: e.bindings.Set(name, v)}
}

// Lookup retrieves the interval bound to name, if any.
func (e Env) Lookup(name string) (interval.Interval, bool) {
	if e.bindings == nil {
		return interval.Empty(), false
	}
	return e.bindings.Get(name)
}

// Expr parses src as an expression and evaluates it in env. Domain failures
// still come back as the empty interval with a nil error; only malformed or
// unsupported expressions and unbound identifiers produce errors.
func Expr(src string, env Env) (interval.Interval, error) {
	node, err := parser.ParseExpr(src)
	if err != nil {
		return interval.Empty(), fmt.Errorf("parsing %q: %w", src, err)
	}
	return evalNode(node, env)
}

func evalNode(node ast.Expr, env Env) (interval.Interval, error) {
	switch node := node.(type) {
	case *ast.ParenExpr:
		return evalNode(node.X, env)
	case *ast.BasicLit:
		if node.Kind != token.INT && node.Kind != token.FLOAT {
			return interval.Empty(), fmt.Errorf("unsupported literal %s", node.Value)
		}
		v, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return interval.Empty(), fmt.Errorf("literal %s: %w", node.Value, err)
		}
		return interval.Point(v), nil
	case *ast.Ident:
		v, found := env.Lookup(node.Name)
		if !found {
			return interval.Empty(), fmt.Errorf("unbound identifier %q", node.Name)
		}
		return v, nil
	case *ast.UnaryExpr:
		x, err := evalNode(node.X, env)
		if err != nil {
			return interval.Empty(), err
		}
		switch node.Op {
		case token.ADD:
			return x.Positive(), nil
		case token.SUB:
			return x.Negative(), nil
		}
		return interval.Empty(), fmt.Errorf("unsupported unary operator %s", node.Op)
	case *ast.BinaryExpr:
		x, err := evalNode(node.X, env)
		if err != nil {
			return interval.Empty(), err
		}
		y, err := evalNode(node.Y, env)
		if err != nil {
			return interval.Empty(), err
		}
		switch node.Op {
		case token.ADD:
			return x.Add(y), nil
		case token.SUB:
			return x.Sub(y), nil
		case token.MUL:
			return x.Mul(y), nil
		case token.QUO:
			return x.Div(y), nil
		}
		return interval.Empty(), fmt.Errorf("unsupported binary operator %s", node.Op)
	}
	return interval.Empty(), fmt.Errorf("unsupported expression %T", node)
}
