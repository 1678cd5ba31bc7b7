package doctag

import (
	"fmt"
	"strings"
)

// ParseType parses a JSDoc type expression such as "Array.<string|number>",
// "{a: string, b: number}", "...*" or "function(string): boolean" into its
// Expr form.
func ParseType(s string) (Expr, error) {
	p := &typeParser{input: s}
	expr, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("doctag: unexpected %q in type expression %q", p.input[p.pos:], s)
	}
	return expr, nil
}

type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) parseUnion() (Expr, error) {
	first, err := p.parseSingle()
	if err != nil {
		return nil, err
	}
	elems := []Expr{first}
	for {
		p.skipSpace()
		if !p.eat('|') {
			break
		}
		next, err := p.parseSingle()
		if err != nil {
			return nil, err
		}
		elems = append(elems, next)
	}
	if len(elems) == 1 {
		return first, nil
	}
	return UnionExpr{Elems: elems}, nil
}

func (p *typeParser) parseSingle() (Expr, error) {
	p.skipSpace()
	switch {
	case strings.HasPrefix(p.rest(), "..."):
		p.pos += 3
		inner, err := p.parseSingle()
		if err != nil {
			return nil, err
		}
		return RestExpr{Expr: inner}, nil
	case p.peek() == '*':
		p.pos++
		return p.suffix(AllLiteral{})
	case p.peek() == '(':
		p.pos++
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if !p.eat(')') {
			return nil, fmt.Errorf("doctag: missing ')' in type expression %q", p.input)
		}
		return p.suffix(inner)
	case p.peek() == '{':
		return p.parseRecord()
	default:
		return p.parseName()
	}
}

func (p *typeParser) parseRecord() (Expr, error) {
	p.pos++ // consume '{'
	var fields []RecordField
	p.skipSpace()
	for p.peek() != '}' {
		key := p.ident()
		if key == "" {
			return nil, fmt.Errorf("doctag: missing field name in record type %q", p.input)
		}
		p.skipSpace()
		if !p.eat(':') {
			return nil, fmt.Errorf("doctag: missing ':' after %q in record type %q", key, p.input)
		}
		value, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		fields = append(fields, RecordField{Key: key, Value: value})
		p.skipSpace()
		if !p.eat(',') {
			break
		}
		p.skipSpace()
	}
	if !p.eat('}') {
		return nil, fmt.Errorf("doctag: missing '}' in record type %q", p.input)
	}
	return p.suffix(RecordExpr{Fields: fields})
}

func (p *typeParser) parseName() (Expr, error) {
	name := p.ident()
	if name == "" {
		return nil, fmt.Errorf("doctag: empty type expression at %q", p.rest())
	}

	// "function(a, b): c" is a function type, not a name.
	if name == "function" {
		p.skipSpace()
		if p.peek() == '(' {
			return p.parseFunction()
		}
	}

	var expr Expr
	if name == "null" {
		expr = NullLiteral{}
	} else {
		expr = NameExpr{Name: name}
	}

	// "Foo.<A,B>" applies type arguments to the container.
	if strings.HasPrefix(p.rest(), ".<") {
		p.pos += 2
		var args []Expr
		for {
			arg, err := p.parseUnion()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			p.skipSpace()
			if !p.eat(',') {
				break
			}
		}
		if !p.eat('>') {
			return nil, fmt.Errorf("doctag: missing '>' in type application %q", p.input)
		}
		expr = Application{Expr: expr, Args: args}
	}

	return p.suffix(expr)
}

func (p *typeParser) parseFunction() (Expr, error) {
	p.pos++ // consume '('
	var params []Expr
	p.skipSpace()
	if p.peek() != ')' {
		for {
			param, err := p.parseUnion()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			p.skipSpace()
			if !p.eat(',') {
				break
			}
		}
	}
	if !p.eat(')') {
		return nil, fmt.Errorf("doctag: missing ')' in function type %q", p.input)
	}
	p.skipSpace()
	if !p.eat(':') {
		return nil, fmt.Errorf("doctag: missing result type in function type %q", p.input)
	}
	result, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	return p.suffix(FunctionExpr{Params: params, Result: result})
}

// suffix wraps expr in OptionalExpr when followed by the optional markers
// "=" or "?".
func (p *typeParser) suffix(expr Expr) (Expr, error) {
	if c := p.peek(); c == '=' || c == '?' {
		p.pos++
		return OptionalExpr{Expr: expr}, nil
	}
	return expr, nil
}

func (p *typeParser) ident() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '_' || c == '$' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			p.pos++
			continue
		}
		// A '.' stays part of the name ("foo.Bar") unless it opens a type
		// application (".<").
		if c == '.' && !strings.HasPrefix(p.input[p.pos:], ".<") {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

func (p *typeParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *typeParser) eat(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *typeParser) rest() string {
	return p.input[p.pos:]
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}
