package doctag

import (
	"fmt"
	"strings"
)

// Expr is one node of a parsed type expression. The variant set is closed:
// Format must handle every variant exhaustively, and an unrecognized variant
// is an error rather than a silent fallback.
type Expr interface {
	typeExpr()
}

// NameExpr is a plain type name, e.g. "string" or "Sequence".
type NameExpr struct {
	Name string
}

// AllLiteral is the wildcard type "*".
type AllLiteral struct{}

// NullLiteral is the "null" type.
type NullLiteral struct{}

// Application is a generic container applied to type arguments,
// e.g. "Array.<string>".
type Application struct {
	Expr Expr
	Args []Expr
}

// RecordField is one field of a RecordExpr.
type RecordField struct {
	Key   string
	Value Expr
}

// RecordExpr is an ordered field->type record, e.g. "{a: string, b: number}".
type RecordExpr struct {
	Fields []RecordField
}

// OptionalExpr marks a type as optional, e.g. "string=".
type OptionalExpr struct {
	Expr Expr
}

// UnionExpr is an ordered set of alternatives, e.g. "(string|number)".
type UnionExpr struct {
	Elems []Expr
}

// RestExpr is a variadic type, e.g. "...string".
type RestExpr struct {
	Expr Expr
}

// FunctionExpr is a function type with ordered parameter types and a result
// type, e.g. "function(string, number): boolean".
type FunctionExpr struct {
	Params []Expr
	Result Expr
}

func (NameExpr) typeExpr()     {}
func (AllLiteral) typeExpr()   {}
func (NullLiteral) typeExpr()  {}
func (Application) typeExpr()  {}
func (RecordExpr) typeExpr()   {}
func (OptionalExpr) typeExpr() {}
func (UnionExpr) typeExpr()    {}
func (RestExpr) typeExpr()     {}
func (FunctionExpr) typeExpr() {}

// Format renders a type expression in its canonical string form. A variant
// outside the documented set fails: emitting misleading signature output would
// be worse than aborting the pass.
//
// The record form intentionally omits its closing brace ("{a:string, b:number")
// to stay compatible with the output downstream templates were written against.
func Format(e Expr) (string, error) {
	switch t := e.(type) {
	case NameExpr:
		return t.Name, nil
	case AllLiteral:
		return "*", nil
	case NullLiteral:
		return "null", nil
	case Application:
		expr, err := Format(t.Expr)
		if err != nil {
			return "", err
		}
		args, err := formatList(t.Args)
		if err != nil {
			return "", err
		}
		return expr + ".<" + strings.Join(args, "|") + ">", nil
	case RecordExpr:
		fields := make([]string, 0, len(t.Fields))
		for _, f := range t.Fields {
			v, err := Format(f.Value)
			if err != nil {
				return "", err
			}
			fields = append(fields, f.Key+":"+v)
		}
		return "{" + strings.Join(fields, ", "), nil
	case OptionalExpr:
		expr, err := Format(t.Expr)
		if err != nil {
			return "", err
		}
		return expr + "?", nil
	case UnionExpr:
		elems, err := formatList(t.Elems)
		if err != nil {
			return "", err
		}
		return strings.Join(elems, "|"), nil
	case RestExpr:
		expr, err := Format(t.Expr)
		if err != nil {
			return "", err
		}
		return "..." + expr, nil
	case FunctionExpr:
		params, err := formatList(t.Params)
		if err != nil {
			return "", err
		}
		result, err := Format(t.Result)
		if err != nil {
			return "", err
		}
		return "function(" + strings.Join(params, ", ") + "):" + result, nil
	default:
		return "", fmt.Errorf("doctag: cannot format type expression %T", e)
	}
}

func formatList(exprs []Expr) ([]string, error) {
	out := make([]string, 0, len(exprs))
	for _, e := range exprs {
		s, err := Format(e)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
