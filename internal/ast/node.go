// Package ast defines the JavaScript AST subset jsdocgen analyzes, along with
// the traversal and name-resolution primitives built on it.
package ast

// NodeType discriminates the syntactic category of a Node.
type NodeType string

// The closed set of node types the walker and name resolver understand.
const (
	FunctionDeclaration  NodeType = "FunctionDeclaration"
	FunctionExpression   NodeType = "FunctionExpression"
	BlockStatement       NodeType = "BlockStatement"
	ExpressionStatement  NodeType = "ExpressionStatement"
	AssignmentExpression NodeType = "AssignmentExpression"
	CallExpression       NodeType = "CallExpression"
	MemberExpression     NodeType = "MemberExpression"
	ObjectExpression     NodeType = "ObjectExpression"
	Property             NodeType = "Property"
	VariableDeclaration  NodeType = "VariableDeclaration"
	VariableDeclarator   NodeType = "VariableDeclarator"
	Identifier           NodeType = "Identifier"
	EmptyStatement       NodeType = "EmptyStatement"
	ReturnStatement      NodeType = "ReturnStatement"
)

// Node is one AST node. Only the fields relevant to the node's Type are set;
// the rest stay nil. Parent is a non-owning back-reference assigned by Walk as
// it descends (never for a root node) and is consumed only by NameOf.
type Node struct {
	Type  NodeType
	Start int // first source line, 1-based
	End   int // last source line, 1-based

	Parent *Node

	Name   string  // Identifier
	ID     *Node   // FunctionDeclaration, VariableDeclarator
	Params []*Node // FunctionDeclaration, FunctionExpression
	Body   *Node   // FunctionDeclaration, FunctionExpression: the block
	List   []*Node // BlockStatement
	Expr   *Node   // ExpressionStatement
	Left   *Node   // AssignmentExpression
	Right  *Node   // AssignmentExpression
	Callee *Node   // CallExpression
	Props  []*Node // ObjectExpression
	Key    *Node   // Property
	Value  *Node   // Property
	Decls  []*Node // VariableDeclaration
	Init   *Node   // VariableDeclarator
	Object *Node   // MemberExpression
	Prop   *Node   // MemberExpression
}

// Comment is one block comment with its source line span.
type Comment struct {
	Text  string
	Start int
	End   int
}
