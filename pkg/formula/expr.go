// Package formula synthesizes arithmetic formula strings for aggregated
// microgrid metrics from a validated component graph.
//
// Formulas are plain text over component readings (`#id`), literals, and
// the COALESCE/MIN/MAX functions, for downstream evaluators.
package formula

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

type exprKind uint8

const (
	exprNumber exprKind = iota
	exprComponent
	exprNeg
	exprAdd
	exprSub
	exprCoalesce
	exprMin
	exprMax
)

// concatExprs concatenates the given Expr slices into a newly allocated slice.
func concatExprs(slices ...[]Expr) []Expr {
	var size int
	for _, s := range slices {
		size += len(s)
	}
	out := make([]Expr, 0, size)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// Expr is a node of a formula expression tree.
//
// Expressions are built with the Add, Sub and Neg operators, which
// canonicalize as they construct: negations are folded into
// subtractions, nested additions and subtractions are flattened, and
// double negations cancel. Strings produced by String are deterministic.
type Expr struct {
	kind        exprKind
	value       float64
	componentID uint64
	params      []Expr
}

// Number returns a literal number expression.
func Number(value float64) Expr {
	return Expr{kind: exprNumber, value: value}
}

// Component returns the reading of the component with the given id.
func Component(componentID uint64) Expr {
	return Expr{kind: exprComponent, componentID: componentID}
}

// Coalesce returns the first-non-missing-value expression over the given
// parameters.
func Coalesce(params ...Expr) Expr {
	return Expr{kind: exprCoalesce, params: params}
}

// Min returns the minimum over the given parameters.
func Min(params ...Expr) Expr {
	return Expr{kind: exprMin, params: params}
}

// Max returns the maximum over the given parameters.
func Max(params ...Expr) Expr {
	return Expr{kind: exprMax, params: params}
}

// Add returns the canonicalized sum of e and rhs.
func (e Expr) Add(rhs Expr) Expr {
	l, r := e, rhs
	switch {
	// -a + -b = -(a + b)
	case l.kind == exprNeg && r.kind == exprNeg:
		return l.params[0].Add(r.params[0]).Neg()
	// a + -b = a - b
	case r.kind == exprNeg:
		return l.Sub(r.params[0])
	// -a + b = b - a
	case l.kind == exprNeg:
		return r.Sub(l.params[0])
	// (a + b) + (c + d) = a + b + c + d
	case l.kind == exprAdd && r.kind == exprAdd:
		return Expr{kind: exprAdd, params: concatExprs(l.params, r.params)}
	// (a + b) + c = a + b + c
	case l.kind == exprAdd:
		return Expr{kind: exprAdd, params: concatExprs(l.params, []Expr{r})}
	// a + (b + c) = a + b + c
	case r.kind == exprAdd:
		return Expr{kind: exprAdd, params: concatExprs([]Expr{l}, r.params)}
	default:
		return Expr{kind: exprAdd, params: []Expr{l, r}}
	}
}

// Sub returns the canonicalized difference of e and rhs.
func (e Expr) Sub(rhs Expr) Expr {
	l, r := e, rhs
	switch {
	// (a - b) - -c = a - b + c
	case l.kind == exprSub && r.kind == exprNeg:
		return l.Add(r.params[0])
	// -a - (b - c) = c - b - a
	case l.kind == exprNeg && r.kind == exprSub:
		return r.Neg().Sub(l.params[0])
	// (a - b) - c = a - b - c
	case l.kind == exprSub:
		return Expr{kind: exprSub, params: concatExprs(l.params, []Expr{r})}
	// -a - -b = b - a
	case l.kind == exprNeg && r.kind == exprNeg:
		return Expr{kind: exprSub, params: []Expr{r.params[0], l.params[0]}}
	// -a - b = -(a + b)
	case l.kind == exprNeg:
		return l.params[0].Add(r).Neg()
	// a - -b = a + b
	case r.kind == exprNeg:
		return l.Add(r.params[0])
	default:
		return Expr{kind: exprSub, params: []Expr{l, r}}
	}
}

// Neg returns the canonicalized negation of e.
func (e Expr) Neg() Expr {
	switch e.kind {
	// -(-a) = a
	case exprNeg:
		return e.params[0]
	// -(a - b) = b - a
	// -(a - b - c) = b + c - a
	case exprSub:
		first := e.params[0]
		rest := Expr{kind: exprAdd, params: slices.Clone(e.params[1:])}
		return rest.Sub(first)
	default:
		return Expr{kind: exprNeg, params: []Expr{e}}
	}
}

// String returns the deterministic text form of the expression.
func (e Expr) String() string {
	return e.render(false)
}

// bracketMode selects which parameters of a joined list are
// parenthesized when they are themselves compound.
type bracketMode uint8

const (
	bracketNone bracketMode = iota
	bracketRest
)

func (e Expr) render(bracketWhole bool) string {
	switch e.kind {
	case exprNeg:
		return "-" + e.params[0].render(true)
	case exprNumber:
		if e.value == math.Trunc(e.value) {
			// Whole numbers render with one decimal place.
			return strconv.FormatFloat(e.value, 'f', 1, 64)
		}
		return strconv.FormatFloat(e.value, 'f', -1, 64)
	case exprComponent:
		return "#" + strconv.FormatUint(e.componentID, 10)
	case exprAdd:
		return joinParams(e.params, " + ", "", bracketNone, bracketWhole)
	case exprSub:
		return joinParams(e.params, " - ", "", bracketRest, bracketWhole)
	case exprCoalesce:
		return joinParams(e.params, ", ", "COALESCE", bracketNone, false)
	case exprMin:
		return joinParams(e.params, ", ", "MIN", bracketNone, false)
	case exprMax:
		return joinParams(e.params, ", ", "MAX", bracketNone, false)
	default:
		return ""
	}
}

func joinParams(
	params []Expr, separator, prefix string, mode bracketMode, bracketWhole bool,
) string {
	var b strings.Builder
	suffix := ""
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteString("(")
		suffix = ")"
	}
	for i, param := range params {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(param.render(mode == bracketRest && i > 0))
	}
	if bracketWhole && len(params) > 1 {
		return "(" + b.String() + suffix + ")"
	}
	return b.String() + suffix
}
