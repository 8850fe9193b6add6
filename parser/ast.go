// SPDX-License-Identifier: MIT
package parser

import (
	"fmt"
	"io"
	"strings"

	"gitlab.com/fisherprime/cynophobia/types"
)

type (
	// Node represents a generic AST node.
	Node interface {
		// Position obtains the position of the node's first token.
		Position() types.Position
	}

	// Expression is implemented by every node that produces a value.
	Expression interface {
		Node
		expressionNode()
	}

	// Statement is implemented by every executable node.
	Statement interface {
		Node
		statementNode()
	}

	// IntConstant is an integer literal.
	//
	//	return 100;
	//	       ^^^  IntConstant{Value: Constant}
	IntConstant struct {
		Value types.Token
	}

	// Return is a return statement.
	//
	//	return 100;
	//	^^^^^^ ^^^^  Return{ReturnToken, Expression, SemicolonToken}
	Return struct {
		ReturnToken    types.Token
		Expression     Expression
		SemicolonToken types.Token
	}

	// Function is a function definition taking no parameters.
	Function struct {
		TypeToken       types.Token
		IdentifierToken types.Token

		OpenParenToken  types.Token
		VoidToken       types.Token
		CloseParenToken types.Token

		OpenBraceToken  types.Token
		Body            Statement
		CloseBraceToken types.Token
	}

	// Program is the AST root.
	Program struct {
		Function *Function
	}
)

var (
	_ Expression = (*IntConstant)(nil)
	_ Statement  = (*Return)(nil)
	_ Node       = (*Function)(nil)
	_ Node       = (*Program)(nil)
)

func (*IntConstant) expressionNode() {}
func (*Return) statementNode()       {}

func (n *IntConstant) Position() types.Position { return n.Value.Position }
func (n *Return) Position() types.Position      { return n.ReturnToken.Position }
func (n *Function) Position() types.Position    { return n.TypeToken.Position }
func (n *Program) Position() types.Position     { return n.Function.Position() }

// Dump writes a human-readable representation of the node tree, resolving token text from
// texts.
func Dump(w io.Writer, n Node, texts types.StringSlice) {
	dumpNode(w, n, texts, "")
}

// Tree renders the Program tree.
func (n *Program) Tree(texts types.StringSlice) string {
	var sb strings.Builder
	Dump(&sb, n, texts)

	return sb.String()
}

func dumpNode(w io.Writer, n Node, texts types.StringSlice, indent string) {
	pos := n.Position()

	switch t := n.(type) {
	case *Program:
		fmt.Fprintf(w, "%s%s Program {\n", indent, pos)
		dumpNode(w, t.Function, texts, indent+"   ")
		fmt.Fprintf(w, "%s}\n", indent)
	case *Function:
		fmt.Fprintf(w, "%s%s Function(%s %s) {\n", indent, pos,
			t.TypeToken.Text(texts), t.IdentifierToken.Text(texts))
		dumpNode(w, t.Body, texts, indent+"   ")
		fmt.Fprintf(w, "%s}\n", indent)
	case *Return:
		fmt.Fprintf(w, "%s%s Return {\n", indent, pos)
		dumpNode(w, t.Expression, texts, indent+"   ")
		fmt.Fprintf(w, "%s}\n", indent)
	case *IntConstant:
		fmt.Fprintf(w, "%s%s IntConstant(%s)\n", indent, pos, t.Value.Text(texts))
	}
}
