// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matcher

import (
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"

	"github.com/milvus-io/matchexpr/pkg/util/merr"
	"github.com/milvus-io/matchexpr/pkg/util/typeutil"
)

// ExprExpr wraps an aggregation expression. The tree rewrite algebra treats
// it as opaque except for field dependencies and renaming, both of which are
// delegated to the wrapped expression's own AST.
type ExprExpr struct {
	source string
	tree   *parser.Tree
	fields typeutil.Set[string]
}

// NewExprExpr parses and wraps an aggregation expression.
func NewExprExpr(source string) (*ExprExpr, error) {
	tree, err := parser.Parse(source)
	if err != nil {
		return nil, merr.WrapErrExprUnparsable(source, err)
	}
	e := &ExprExpr{source: source, tree: tree}
	e.collectFields()
	return e, nil
}

func (e *ExprExpr) Kind() MatchKind             { return KindExpression }
func (e *ExprExpr) Category() MatchCategory     { return CategoryOther }
func (e *ExprExpr) Path() string                { return "" }
func (e *ExprExpr) NumChildren() int            { return 0 }
func (e *ExprExpr) Child(i int) MatchExpression { return nil }

// Source returns the current text of the wrapped expression.
func (e *ExprExpr) Source() string {
	return e.source
}

// Fields returns the field paths the wrapped expression reads.
func (e *ExprExpr) Fields() typeutil.Set[string] {
	return e.fields
}

func (e *ExprExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*ExprExpr)
	return ok && e.source == o.source
}

func (e *ExprExpr) Serialize() []byte {
	return marshalDoc(map[string]any{"$expr": e.source})
}

// ApplyRename rewrites top-level field identifiers of the wrapped expression.
// Dotted member accesses follow their renamed base identifier; rename-map
// entries addressing a dotted sub-path directly have no effect here.
func (e *ExprExpr) ApplyRename(renames map[string]string) {
	patcher := &identifierPatcher{renames: renames}
	ast.Walk(&e.tree.Node, patcher)
	if patcher.patched {
		e.source = e.tree.Node.String()
		e.collectFields()
	}
}

func (e *ExprExpr) collectFields() {
	collector := &fieldCollector{fields: typeutil.NewSet[string]()}
	ast.Walk(&e.tree.Node, collector)
	e.fields = collector.fields
}

// fieldCollector gathers referenced fields: bare identifiers plus dotted
// member chains rooted at an identifier. The base identifier of a member
// chain is collected as well, which only makes the dependency set a
// conservative superset.
type fieldCollector struct {
	fields typeutil.Set[string]
}

func (v *fieldCollector) Visit(node *ast.Node) {
	switch n := (*node).(type) {
	case *ast.IdentifierNode:
		v.fields.Insert(n.Value)
	case *ast.MemberNode:
		if path, ok := memberFieldPath(n); ok {
			v.fields.Insert(path)
		}
	}
}

// memberFieldPath flattens a member chain like a.b.c into a dotted path,
// returning false for chains not rooted at a plain identifier.
func memberFieldPath(n *ast.MemberNode) (string, bool) {
	var property string
	switch p := n.Property.(type) {
	case *ast.StringNode:
		property = p.Value
	case *ast.IdentifierNode:
		property = p.Value
	default:
		return "", false
	}

	switch base := n.Node.(type) {
	case *ast.IdentifierNode:
		return base.Value + "." + property, true
	case *ast.MemberNode:
		prefix, ok := memberFieldPath(base)
		if !ok {
			return "", false
		}
		return prefix + "." + property, true
	default:
		return "", false
	}
}

type identifierPatcher struct {
	renames map[string]string
	patched bool
}

func (v *identifierPatcher) Visit(node *ast.Node) {
	ident, ok := (*node).(*ast.IdentifierNode)
	if !ok {
		return
	}
	if to, ok := v.renames[ident.Value]; ok {
		ast.Patch(node, &ast.IdentifierNode{Value: to})
		v.patched = true
	}
}
