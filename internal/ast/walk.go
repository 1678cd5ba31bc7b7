package ast

import "fmt"

// Visitor is invoked once per visited node. Returning false stops the walk;
// no further nodes are visited at any depth.
type Visitor func(*Node) bool

// Walk traverses nodes depth-first in pre-order. Before descending into a
// node's children it assigns each child's Parent back-reference, so re-walking
// the same tree reproduces the identical sequence. An unrecognized node type
// aborts the walk: skipping unknown structure silently could hide documented
// functions.
func Walk(nodes []*Node, visit Visitor) error {
	_, err := walk(nodes, visit)
	return err
}

func walk(nodes []*Node, visit Visitor) (stopped bool, err error) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if !visit(n) {
			return true, nil
		}
		children, err := childrenOf(n)
		if err != nil {
			return false, err
		}
		for _, c := range children {
			if c != nil {
				c.Parent = n
			}
		}
		stopped, err := walk(children, visit)
		if err != nil || stopped {
			return stopped, err
		}
	}
	return false, nil
}

// childrenOf returns the children to descend into, per node type. The table is
// exhaustive over the supported grammar; anything else is an error.
func childrenOf(n *Node) ([]*Node, error) {
	switch n.Type {
	case FunctionDeclaration, FunctionExpression:
		if n.Body == nil {
			return nil, nil
		}
		return []*Node{n.Body}, nil
	case BlockStatement:
		return n.List, nil
	case ExpressionStatement:
		return []*Node{n.Expr}, nil
	case AssignmentExpression:
		return []*Node{n.Right}, nil
	case CallExpression:
		// Only an immediately-invoked function expression carries
		// documentable structure.
		if n.Callee != nil && n.Callee.Type == FunctionExpression {
			return []*Node{n.Callee}, nil
		}
		return nil, nil
	case ObjectExpression:
		return n.Props, nil
	case Property:
		return []*Node{n.Key, n.Value}, nil
	case VariableDeclaration:
		return n.Decls, nil
	case VariableDeclarator:
		return []*Node{n.Init}, nil
	case Identifier, EmptyStatement, ReturnStatement:
		return nil, nil
	default:
		return nil, fmt.Errorf("ast: unknown node type %q at line %d", n.Type, n.Start)
	}
}
