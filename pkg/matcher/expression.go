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
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MatchExpression is a node of a predicate tree. A tree is logically
// immutable except during a split, where child ownership is transferred from
// one parent to a new synthetic parent; no subtree is ever shared by two live
// parents.
type MatchExpression interface {
	Kind() MatchKind
	Category() MatchCategory

	// Path is the dotted field reference the node constrains,
	// empty for pure logical nodes.
	Path() string

	NumChildren() int
	Child(i int) MatchExpression

	// Equivalent is a structural equivalence test: same kind, path, payload
	// and ordered children. It may answer false for semantically equal trees.
	Equivalent(other MatchExpression) bool

	// Serialize renders the node as a JSON document. The subsumption engine
	// reads it back only on the bucketed-geo path.
	Serialize() []byte
}

// Renamable is implemented by expressions that know how to rewrite their own
// field references, i.e. leaf expressions and the aggregation-expression
// wrapper. Logical nodes rename through their children instead.
type Renamable interface {
	ApplyRename(renames map[string]string)
}

var operatorNames = map[MatchKind]string{
	KindEqual:             "$eq",
	KindLT:                "$lt",
	KindLTE:               "$lte",
	KindGT:                "$gt",
	KindGTE:               "$gte",
	KindInternalExprEqual: "$_internalExprEq",
	KindInternalExprLT:    "$_internalExprLt",
	KindInternalExprLTE:   "$_internalExprLte",
	KindInternalExprGT:    "$_internalExprGt",
	KindInternalExprGTE:   "$_internalExprGte",
	KindIn:                "$in",
	KindExists:            "$exists",
	KindRegex:             "$regex",
	KindMod:               "$mod",
	KindSize:              "$size",
	KindType:              "$type",
	KindGeo:               "$geoWithin",
	KindBucketGeoWithin:   "$_internalBucketGeoWithin",
	KindExpression:        "$expr",
	KindText:              "$text",
	KindWhere:             "$where",
	KindElemMatchValue:    "$elemMatch",
	KindElemMatchObject:   "$elemMatch",
	KindAnd:               "$and",
	KindOr:                "$or",
	KindNor:               "$nor",
	KindNot:               "$not",
	KindSchemaXor:         "$_internalSchemaXor",
}

// OperatorName returns the document operator spelling of the kind.
func (k MatchKind) OperatorName() string {
	return operatorNames[k]
}

func marshalDoc(doc map[string]any) []byte {
	data, err := json.Marshal(doc)
	if err != nil {
		// The document is built from plain scalars and maps, marshalling
		// cannot fail on well-formed trees.
		panic(err)
	}
	return data
}

// leafExpr carries the state shared by all leaf predicates.
type leafExpr struct {
	kind      MatchKind
	path      string
	collation *Collation
}

func (e *leafExpr) Kind() MatchKind {
	return e.kind
}

func (e *leafExpr) Category() MatchCategory {
	return e.kind.Category()
}

func (e *leafExpr) Path() string {
	return e.path
}

func (e *leafExpr) NumChildren() int {
	return 0
}

func (e *leafExpr) Child(i int) MatchExpression {
	return nil
}

// Collation returns the borrowed collation reference, nil for binary.
func (e *leafExpr) Collation() *Collation {
	return e.collation
}

// ApplyRename rewrites the path when a rename entry matches it exactly or is
// a dotted-path prefix of it. At most one entry is expected to apply.
func (e *leafExpr) ApplyRename(renames map[string]string) {
	if to, ok := renames[e.path]; ok {
		e.path = to
		return
	}
	for from, to := range renames {
		if len(from) < len(e.path) && strings.HasPrefix(e.path, from) && e.path[len(from)] == '.' {
			e.path = to + e.path[len(from):]
			return
		}
	}
}
