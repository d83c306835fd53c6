// Package node provides the canonical UAST node structure consumed by every
// pattern and metric analyzer: tree construction, traversal and querying.
//
// The tree is produced by an external parser front end and is treated as
// immutable by all analyzers.
package node

import (
	"strings"

	"github.com/Sumatoshi-tech/smellhound/pkg/safeconv"
)

// UAST node type constants.
const (
	UASTFile         = "File"
	UASTPackage      = "Package"
	UASTImport       = "Import"
	UASTClass        = "Class"
	UASTInterface    = "Interface"
	UASTEnum         = "Enum"
	UASTMethod       = "Method"
	UASTConstructor  = "Constructor"
	UASTField        = "Field"
	UASTVariable     = "Variable"
	UASTParameter    = "Parameter"
	UASTBlock        = "Block"
	UASTIf           = "If"
	UASTLoop         = "Loop"
	UASTSwitch       = "Switch"
	UASTCase         = "Case"
	UASTTry          = "Try"
	UASTCatch        = "Catch"
	UASTFinally      = "Finally"
	UASTThrow        = "Throw"
	UASTReturn       = "Return"
	UASTBreak        = "Break"
	UASTContinue     = "Continue"
	UASTAssert       = "Assert"
	UASTSynchronized = "Synchronized"
	UASTAssignment   = "Assignment"
	UASTBinaryOp     = "BinaryOp"
	UASTUnaryOp      = "UnaryOp"
	UASTTernary      = "Ternary"
	UASTCast         = "Cast"
	UASTCall         = "Call"
	UASTIdentifier   = "Identifier"
	UASTLiteral      = "Literal"
	UASTLambda       = "Lambda"
	UASTComment      = "Comment"
)

// Role constants for syntactic and semantic labeling.
const (
	RoleDeclaration = "Declaration"
	RoleReference   = "Reference"
	RoleName        = "Name"
	RoleCondition   = "Condition"
	RoleBody        = "Body"
	RoleElse        = "Else"
	RoleReceiver    = "Receiver"
	RoleArgument    = "Argument"
	RoleLeft        = "Left"
	RoleRight       = "Right"
	RolePublic      = "Public"
	RolePrivate     = "Private"
	RoleProtected   = "Protected"
	RoleStatic      = "Static"
	RoleFinal       = "Final"
	RoleAbstract    = "Abstract"
	RoleSync        = "Synchronized"
)

// Prop keys with a fixed meaning across languages.
const (
	// PropKind discriminates Loop flavors: "for", "foreach", "while", "do".
	PropKind = "kind"
	// PropPart labels for-loop header children: "init", "condition", "update".
	PropPart = "part"
	// PropType carries the declared type of a Field, Variable or Parameter.
	PropType = "type"
	// PropImplements lists implemented interfaces, comma-separated.
	PropImplements = "implements"
	// PropExtends names the extended class.
	PropExtends = "extends"
	// PropThrows lists declared thrown exception types, comma-separated.
	PropThrows = "throws"
	// PropReturns carries the declared return type of a Method.
	PropReturns = "returns"
)

// Loop kind values stored under PropKind.
const (
	KindFor     = "for"
	KindForEach = "foreach"
	KindWhile   = "while"
	KindDo      = "do"
)

// NullLiteral is the token of the null literal node.
const NullLiteral = "null"

// Role represents a syntactic/semantic label for a node.
type Role string

// Type represents a type label for a node.
type Type string

// Positions represents the byte and line/col offsets for a node.
// Line and column fields are 1-based.
type Positions struct {
	StartLine uint `json:"start_line,omitempty"`
	StartCol  uint `json:"start_col,omitempty"`
	EndLine   uint `json:"end_line,omitempty"`
	EndCol    uint `json:"end_col,omitempty"`
}

// Node is the canonical UAST node structure.
//
// Fields:
//
//	ID: unique node identifier (optional).
//	Type: node type (e.g., "Method", "Identifier").
//	Token: string value or token for leaf nodes.
//	Roles: semantic/syntactic roles (see Role).
//	Pos: source code position info (optional).
//	Props: additional properties (language-specific).
//	Children: child nodes (ordered).
type Node struct {
	ID       string            `json:"id,omitempty"`
	Token    string            `json:"token,omitempty"`
	Type     Type              `json:"type,omitempty"`
	Roles    []Role            `json:"roles,omitempty"`
	Pos      *Positions        `json:"pos,omitempty"`
	Props    map[string]string `json:"props,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// New creates a Node with the given type and token.
func New(nodeType Type, token string) *Node {
	return &Node{Type: nodeType, Token: token}
}

// NewAt creates a Node with the given type, token and start line.
func NewAt(nodeType Type, token string, line uint) *Node {
	return &Node{Type: nodeType, Token: token, Pos: &Positions{StartLine: line}}
}

// AddChild appends child nodes and returns the receiver for chaining.
func (targetNode *Node) AddChild(children ...*Node) *Node {
	targetNode.Children = append(targetNode.Children, children...)

	return targetNode
}

// WithRoles sets the node roles and returns the receiver for chaining.
func (targetNode *Node) WithRoles(roles ...Role) *Node {
	targetNode.Roles = roles

	return targetNode
}

// WithProp sets a single property and returns the receiver for chaining.
func (targetNode *Node) WithProp(key, value string) *Node {
	if targetNode.Props == nil {
		targetNode.Props = make(map[string]string, 1)
	}

	targetNode.Props[key] = value

	return targetNode
}

// Line returns the 1-based start line of the node, or 0 when the node
// carries no position information.
func (targetNode *Node) Line() int {
	if targetNode.Pos == nil {
		return 0
	}

	return safeconv.MustUintToInt(targetNode.Pos.StartLine)
}

// Prop returns the property value for key, or "" when absent.
func (targetNode *Node) Prop(key string) string {
	if targetNode.Props == nil {
		return ""
	}

	return targetNode.Props[key]
}

// PropList splits a comma-separated property into trimmed non-empty items.
func (targetNode *Node) PropList(key string) []string {
	raw := targetNode.Prop(key)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))

	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			items = append(items, item)
		}
	}

	return items
}

// HasAnyType reports whether the node type matches any of the given types.
func (targetNode *Node) HasAnyType(nodeTypes ...Type) bool {
	for _, nodeType := range nodeTypes {
		if targetNode.Type == nodeType {
			return true
		}
	}

	return false
}

// HasAnyRole reports whether the node carries any of the given roles.
func (targetNode *Node) HasAnyRole(roles ...Role) bool {
	for _, role := range roles {
		for _, nodeRole := range targetNode.Roles {
			if nodeRole == role {
				return true
			}
		}
	}

	return false
}

// HasAllRoles reports whether the node carries every one of the given roles.
func (targetNode *Node) HasAllRoles(roles ...Role) bool {
	for _, role := range roles {
		if !targetNode.HasAnyRole(role) {
			return false
		}
	}

	return true
}

// FirstChildWithRole returns the first direct child carrying the role, or nil.
func (targetNode *Node) FirstChildWithRole(role Role) *Node {
	for _, child := range targetNode.Children {
		if child.HasAnyRole(role) {
			return child
		}
	}

	return nil
}
