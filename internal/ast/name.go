package ast

import "strings"

// NameOf derives the best-effort qualified name for a node by climbing through
// parent links and type-specific rules. Anonymous function expressions inherit
// the name of whatever assigns or contains them. The ".prototype." segment is
// rewritten to "#", marking an instance member (Foo.prototype.bar -> Foo#bar).
// Returns "" when no name can be derived.
func NameOf(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case Identifier:
		return n.Name
	case FunctionDeclaration:
		return NameOf(n.ID)
	case AssignmentExpression:
		return NameOf(n.Left)
	case MemberExpression:
		name := NameOf(n.Object) + "." + NameOf(n.Prop)
		return strings.ReplaceAll(name, ".prototype.", "#")
	case Property:
		return NameOf(n.Parent) + "." + NameOf(n.Key)
	case FunctionExpression:
		return NameOf(n.Parent)
	case VariableDeclarator:
		return NameOf(n.ID)
	case ExpressionStatement:
		return NameOf(n.Expr)
	default:
		return NameOf(n.Parent)
	}
}
