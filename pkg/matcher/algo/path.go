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
	"strings"

	"github.com/milvus-io/matchexpr/pkg/matcher"
)

// IsPathPrefixOf returns true if first is a dotted-path prefix of second.
// A plain string prefix is not enough: "a" is a path prefix of "a.b" but not
// of "ab", and a path is not a prefix of itself.
func IsPathPrefixOf(first, second string) bool {
	if len(first) >= len(second) {
		return false
	}
	return strings.HasPrefix(second, first) && second[len(first)] == '.'
}

// BidirectionalPathPrefixOf returns true if the paths are equal or either is
// a dotted-path prefix of the other.
func BidirectionalPathPrefixOf(first, second string) bool {
	return first == second || IsPathPrefixOf(first, second) || IsPathPrefixOf(second, first)
}

// HasExistencePredicateOnPath searches the tree for an $exists leaf on the
// given path.
func HasExistencePredicateOnPath(expr matcher.MatchExpression, path string) bool {
	if expr.Category() == matcher.CategoryLeaf {
		return expr.Kind() == matcher.KindExists && expr.Path() == path
	}
	for i := 0; i < expr.NumChildren(); i++ {
		if HasExistencePredicateOnPath(expr.Child(i), path) {
			return true
		}
	}
	return false
}
