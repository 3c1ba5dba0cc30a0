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
	"github.com/samber/lo"

	"github.com/milvus-io/matchexpr/pkg/util/merr"
)

// ComparisonExpr is a single-field ordered comparison, either from the
// $lt/$lte/$eq/$gte/$gt family or from the internal expression-derived family.
type ComparisonExpr struct {
	leafExpr
	value Value
}

// NewComparisonExpr builds a comparison leaf. Missing values are rejected, a
// comparison leaf never holds a missing/undefined value.
func NewComparisonExpr(kind MatchKind, path string, value Value, collation *Collation) (*ComparisonExpr, error) {
	if !kind.IsComparison() && !kind.IsInternalExprComparison() {
		return nil, merr.WrapErrExprInvalid("kind %s is not a comparison", kind)
	}
	if value.Kind() == ValueMissing {
		return nil, merr.WrapErrExprMissingValue(path)
	}
	return &ComparisonExpr{
		leafExpr: leafExpr{kind: kind, path: path, collation: collation},
		value:    value,
	}, nil
}

func (e *ComparisonExpr) Value() Value {
	return e.value
}

func (e *ComparisonExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*ComparisonExpr)
	if !ok {
		return false
	}
	return e.kind == o.kind &&
		e.path == o.path &&
		CollationsMatch(e.collation, o.collation) &&
		e.value.StrictEqual(o.value)
}

func (e *ComparisonExpr) Serialize() []byte {
	return marshalDoc(map[string]any{
		e.path: map[string]any{e.kind.OperatorName(): e.value.Raw()},
	})
}

// ExistsExpr matches documents where the field is present.
type ExistsExpr struct {
	leafExpr
}

func NewExistsExpr(path string) *ExistsExpr {
	return &ExistsExpr{leafExpr: leafExpr{kind: KindExists, path: path}}
}

func (e *ExistsExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*ExistsExpr)
	return ok && e.path == o.path
}

func (e *ExistsExpr) Serialize() []byte {
	return marshalDoc(map[string]any{
		e.path: map[string]any{"$exists": true},
	})
}

// RegexExpr matches string fields against a regular expression. It is opaque
// to the subsumption comparator except for existence implication.
type RegexExpr struct {
	leafExpr
	pattern string
	options string
}

func NewRegexExpr(path, pattern, options string) *RegexExpr {
	return &RegexExpr{
		leafExpr: leafExpr{kind: KindRegex, path: path},
		pattern:  pattern,
		options:  options,
	}
}

func (e *RegexExpr) Pattern() string {
	return e.pattern
}

func (e *RegexExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*RegexExpr)
	return ok && e.path == o.path && e.pattern == o.pattern && e.options == o.options
}

func (e *RegexExpr) Serialize() []byte {
	return marshalDoc(map[string]any{
		e.path: map[string]any{"$regex": e.pattern, "$options": e.options},
	})
}

// ModExpr matches numeric fields by divisor/remainder.
type ModExpr struct {
	leafExpr
	divisor   int64
	remainder int64
}

func NewModExpr(path string, divisor, remainder int64) (*ModExpr, error) {
	if divisor == 0 {
		return nil, merr.WrapErrExprInvalid("$mod divisor must not be zero, path=%s", path)
	}
	return &ModExpr{
		leafExpr:  leafExpr{kind: KindMod, path: path},
		divisor:   divisor,
		remainder: remainder,
	}, nil
}

func (e *ModExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*ModExpr)
	return ok && e.path == o.path && e.divisor == o.divisor && e.remainder == o.remainder
}

func (e *ModExpr) Serialize() []byte {
	return marshalDoc(map[string]any{
		e.path: map[string]any{"$mod": []int64{e.divisor, e.remainder}},
	})
}

// SizeExpr matches array fields of an exact length.
type SizeExpr struct {
	leafExpr
	size int64
}

func NewSizeExpr(path string, size int64) (*SizeExpr, error) {
	if size < 0 {
		return nil, merr.WrapErrParameterInvalid("a non-negative $size", size)
	}
	return &SizeExpr{
		leafExpr: leafExpr{kind: KindSize, path: path},
		size:     size,
	}, nil
}

func (e *SizeExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*SizeExpr)
	return ok && e.path == o.path && e.size == o.size
}

func (e *SizeExpr) Serialize() []byte {
	return marshalDoc(map[string]any{
		e.path: map[string]any{"$size": e.size},
	})
}

// TypeExpr matches fields whose value belongs to one of the listed kinds.
type TypeExpr struct {
	leafExpr
	types []ValueKind
}

func NewTypeExpr(path string, types ...ValueKind) *TypeExpr {
	return &TypeExpr{
		leafExpr: leafExpr{kind: KindType, path: path},
		types:    types,
	}
}

func (e *TypeExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*TypeExpr)
	if !ok || e.path != o.path || len(e.types) != len(o.types) {
		return false
	}
	return lo.Every(o.types, e.types)
}

func (e *TypeExpr) Serialize() []byte {
	names := lo.Map(e.types, func(t ValueKind, _ int) string { return t.String() })
	return marshalDoc(map[string]any{
		e.path: map[string]any{"$type": names},
	})
}

// TextExpr is a full-text predicate, fully opaque to this algebra.
type TextExpr struct {
	query string
}

func NewTextExpr(query string) *TextExpr {
	return &TextExpr{query: query}
}

func (e *TextExpr) Kind() MatchKind          { return KindText }
func (e *TextExpr) Category() MatchCategory  { return CategoryOther }
func (e *TextExpr) Path() string             { return "" }
func (e *TextExpr) NumChildren() int         { return 0 }
func (e *TextExpr) Child(i int) MatchExpression { return nil }

func (e *TextExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*TextExpr)
	return ok && e.query == o.query
}

func (e *TextExpr) Serialize() []byte {
	return marshalDoc(map[string]any{
		"$text": map[string]any{"$search": e.query},
	})
}

// WhereExpr is a javascript predicate, fully opaque to this algebra.
type WhereExpr struct {
	code string
}

func NewWhereExpr(code string) *WhereExpr {
	return &WhereExpr{code: code}
}

func (e *WhereExpr) Kind() MatchKind          { return KindWhere }
func (e *WhereExpr) Category() MatchCategory  { return CategoryOther }
func (e *WhereExpr) Path() string             { return "" }
func (e *WhereExpr) NumChildren() int         { return 0 }
func (e *WhereExpr) Child(i int) MatchExpression { return nil }

func (e *WhereExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*WhereExpr)
	return ok && e.code == o.code
}

func (e *WhereExpr) Serialize() []byte {
	return marshalDoc(map[string]any{"$where": e.code})
}

// ElemMatchExpr matches array fields whose elements satisfy a sub-filter.
// Kind distinguishes the by-value and by-object forms. Array semantics make
// its field references non-renameable, so the rewrite algebra treats it as an
// atomic unit.
type ElemMatchExpr struct {
	kind   MatchKind
	path   string
	filter MatchExpression
}

func NewElemMatchExpr(kind MatchKind, path string, filter MatchExpression) (*ElemMatchExpr, error) {
	if kind != KindElemMatchValue && kind != KindElemMatchObject {
		return nil, merr.WrapErrExprInvalid("kind %s is not an $elemMatch form", kind)
	}
	return &ElemMatchExpr{kind: kind, path: path, filter: filter}, nil
}

func (e *ElemMatchExpr) Kind() MatchKind         { return e.kind }
func (e *ElemMatchExpr) Category() MatchCategory { return CategoryArrayMatching }
func (e *ElemMatchExpr) Path() string            { return e.path }
func (e *ElemMatchExpr) NumChildren() int        { return 1 }

func (e *ElemMatchExpr) Child(i int) MatchExpression {
	if i != 0 {
		return nil
	}
	return e.filter
}

func (e *ElemMatchExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*ElemMatchExpr)
	return ok && e.kind == o.kind && e.path == o.path && e.filter.Equivalent(o.filter)
}

func (e *ElemMatchExpr) Serialize() []byte {
	var filter any
	if err := json.Unmarshal(e.filter.Serialize(), &filter); err != nil {
		panic(err)
	}
	return marshalDoc(map[string]any{
		e.path: map[string]any{"$elemMatch": filter},
	})
}
