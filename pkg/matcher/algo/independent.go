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

package algo

import (
	"github.com/samber/lo"

	"github.com/milvus-io/matchexpr/pkg/matcher"
	"github.com/milvus-io/matchexpr/pkg/util/typeutil"
)

// IsRenameSafe returns true only if every node of the tree has defined rename
// behavior: logical nodes, leaf nodes and the aggregation-expression wrapper.
// Any array-matching or opaque node anywhere makes the whole tree unsafe to
// analyze, see ApplyRenames.
func IsRenameSafe(expr matcher.MatchExpression) bool {
	if expr.Kind() == matcher.KindExpression {
		return true
	}
	switch expr.Category() {
	case matcher.CategoryArrayMatching, matcher.CategoryOther:
		return false
	case matcher.CategoryLogical:
		for i := 0; i < expr.NumChildren(); i++ {
			if !IsRenameSafe(expr.Child(i)) {
				return false
			}
		}
	}
	return true
}

// IsIndependentOf returns true if the tree reads none of the given field
// paths. The overlap test is bidirectional-prefix aware: "a" and "a.b" are
// considered overlapping in both directions. Trees that cannot be analyzed
// are reported as dependent.
func IsIndependentOf(expr matcher.MatchExpression, fields typeutil.Set[string]) bool {
	if !IsRenameSafe(expr) {
		return false
	}

	paths := fields.Collect()
	return lo.NoneBy(matcher.FieldDeps(expr).Collect(), func(field string) bool {
		return lo.SomeBy(paths, func(path string) bool {
			return BidirectionalPathPrefixOf(field, path)
		})
	})
}

// IsOnlyDependentOn returns true if every field path the tree reads equals,
// or strictly extends, some member of the given field set. Trees that cannot
// be analyzed are reported as not covered.
func IsOnlyDependentOn(expr matcher.MatchExpression, fields typeutil.Set[string]) bool {
	if !IsRenameSafe(expr) {
		return false
	}

	paths := fields.Collect()
	return lo.EveryBy(matcher.FieldDeps(expr).Collect(), func(field string) bool {
		return lo.SomeBy(paths, func(path string) bool {
			return path == field || IsPathPrefixOf(path, field)
		})
	})
}
