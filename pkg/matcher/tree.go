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

// listExpr carries the ordered, exclusively-owned children shared by the
// variadic logical connectives.
type listExpr struct {
	kind     MatchKind
	children []MatchExpression
}

func (e *listExpr) Kind() MatchKind {
	return e.kind
}

func (e *listExpr) Category() MatchCategory {
	return CategoryLogical
}

func (e *listExpr) Path() string {
	return ""
}

func (e *listExpr) NumChildren() int {
	return len(e.children)
}

func (e *listExpr) Child(i int) MatchExpression {
	if i < 0 || i >= len(e.children) {
		return nil
	}
	return e.children[i]
}

// Add appends children, taking ownership.
func (e *listExpr) Add(children ...MatchExpression) {
	e.children = append(e.children, children...)
}

// ReleaseChildren transfers ownership of all children to the caller and
// empties the node. Used by the splitter, which reattaches the released
// subtrees under new synthetic parents.
func (e *listExpr) ReleaseChildren() []MatchExpression {
	children := e.children
	e.children = nil
	return children
}

func (e *listExpr) Equivalent(other MatchExpression) bool {
	if other == nil || other.Kind() != e.kind || other.NumChildren() != len(e.children) {
		return false
	}
	for i := range e.children {
		if !e.children[i].Equivalent(other.Child(i)) {
			return false
		}
	}
	return true
}

func (e *listExpr) Serialize() []byte {
	docs := make([]any, 0, len(e.children))
	for _, child := range e.children {
		var doc any
		if err := json.Unmarshal(child.Serialize(), &doc); err != nil {
			panic(err)
		}
		docs = append(docs, doc)
	}
	return marshalDoc(map[string]any{e.kind.OperatorName(): docs})
}

// AndExpr matches documents matching every child.
type AndExpr struct {
	listExpr
}

func NewAndExpr(children ...MatchExpression) *AndExpr {
	return &AndExpr{listExpr: listExpr{kind: KindAnd, children: children}}
}

// OrExpr matches documents matching at least one child.
type OrExpr struct {
	listExpr
}

func NewOrExpr(children ...MatchExpression) *OrExpr {
	return &OrExpr{listExpr: listExpr{kind: KindOr, children: children}}
}

// NorExpr matches documents matching none of the children.
type NorExpr struct {
	listExpr
}

func NewNorExpr(children ...MatchExpression) *NorExpr {
	return &NorExpr{listExpr: listExpr{kind: KindNor, children: children}}
}

// SchemaXorExpr matches documents matching exactly one child.
type SchemaXorExpr struct {
	listExpr
}

func NewSchemaXorExpr(children ...MatchExpression) *SchemaXorExpr {
	return &SchemaXorExpr{listExpr: listExpr{kind: KindSchemaXor, children: children}}
}

// NotExpr negates its single child.
type NotExpr struct {
	child MatchExpression
}

func NewNotExpr(child MatchExpression) *NotExpr {
	return &NotExpr{child: child}
}

func (e *NotExpr) Kind() MatchKind         { return KindNot }
func (e *NotExpr) Category() MatchCategory { return CategoryLogical }
func (e *NotExpr) Path() string            { return "" }
func (e *NotExpr) NumChildren() int        { return 1 }

func (e *NotExpr) Child(i int) MatchExpression {
	if i != 0 {
		return nil
	}
	return e.child
}

func (e *NotExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*NotExpr)
	return ok && e.child.Equivalent(o.child)
}

func (e *NotExpr) Serialize() []byte {
	var doc any
	if err := json.Unmarshal(e.child.Serialize(), &doc); err != nil {
		panic(err)
	}
	return marshalDoc(map[string]any{"$not": doc})
}
