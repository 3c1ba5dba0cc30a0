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
	"github.com/google/btree"
)

const inExprBTreeDegree = 2

// InExpr matches a field against a set of allowed values. Equality members
// are kept deduplicated and ordered by the value comparator under the
// expression's collation; regex members are carried opaquely and block most
// rewrites.
type InExpr struct {
	leafExpr
	equalities *btree.BTreeG[Value]
	regexes    []*RegexExpr
	hasNull    bool
}

func NewInExpr(path string, collation *Collation) *InExpr {
	less := func(a, b Value) bool {
		return CompareValues(a, b, collation) < 0
	}
	return &InExpr{
		leafExpr:   leafExpr{kind: KindIn, path: path, collation: collation},
		equalities: btree.NewG(inExprBTreeDegree, less),
	}
}

// AddEqualities inserts equality members, ignoring duplicates under the
// expression's collation. Missing values are silently dropped, an $in member
// is always a concrete value.
func (e *InExpr) AddEqualities(values ...Value) *InExpr {
	for _, v := range values {
		if v.Kind() == ValueMissing {
			continue
		}
		if v.IsNull() {
			e.hasNull = true
		}
		e.equalities.ReplaceOrInsert(v)
	}
	return e
}

// AddRegexes appends regex members.
func (e *InExpr) AddRegexes(regexes ...*RegexExpr) *InExpr {
	e.regexes = append(e.regexes, regexes...)
	return e
}

// HasRegexes reports whether any member is a regex.
func (e *InExpr) HasRegexes() bool {
	return len(e.regexes) > 0
}

// HasNull reports whether null is among the equality members.
func (e *InExpr) HasNull() bool {
	return e.hasNull
}

func (e *InExpr) NumEqualities() int {
	return e.equalities.Len()
}

// RangeEqualities iterates the equality members in comparator order,
// stopping early if f returns false.
func (e *InExpr) RangeEqualities(f func(v Value) bool) {
	e.equalities.Ascend(func(v Value) bool {
		return f(v)
	})
}

func (e *InExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*InExpr)
	if !ok ||
		e.path != o.path ||
		!CollationsMatch(e.collation, o.collation) ||
		e.equalities.Len() != o.equalities.Len() ||
		len(e.regexes) != len(o.regexes) {
		return false
	}
	for i := range e.regexes {
		if !e.regexes[i].Equivalent(o.regexes[i]) {
			return false
		}
	}

	equal := true
	mine := make([]Value, 0, e.equalities.Len())
	e.equalities.Ascend(func(v Value) bool {
		mine = append(mine, v)
		return true
	})
	i := 0
	o.equalities.Ascend(func(v Value) bool {
		if !mine[i].StrictEqual(v) {
			equal = false
			return false
		}
		i++
		return true
	})
	return equal
}

func (e *InExpr) Serialize() []byte {
	members := make([]any, 0, e.equalities.Len()+len(e.regexes))
	e.equalities.Ascend(func(v Value) bool {
		members = append(members, v.Raw())
		return true
	})
	for _, re := range e.regexes {
		members = append(members, map[string]any{"$regex": re.pattern, "$options": re.options})
	}
	return marshalDoc(map[string]any{
		e.path: map[string]any{"$in": members},
	})
}
