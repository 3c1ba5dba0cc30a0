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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milvus-io/matchexpr/pkg/matcher"
)

func TestIsPathPrefixOf(t *testing.T) {
	tests := []struct {
		first  string
		second string
		want   bool
	}{
		{"a", "a.b", true},
		{"a.b", "a.b.c", true},
		{"a", "ab", false},
		{"a", "a", false},
		{"a.b", "a", false},
		{"", "a", false},
		{"a.b", "a.bc", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPathPrefixOf(tt.first, tt.second),
			"IsPathPrefixOf(%q, %q)", tt.first, tt.second)
	}
}

func TestBidirectionalPathPrefixOf(t *testing.T) {
	assert.True(t, BidirectionalPathPrefixOf("a", "a"))
	assert.True(t, BidirectionalPathPrefixOf("a", "a.b"))
	assert.True(t, BidirectionalPathPrefixOf("a.b", "a"))
	assert.False(t, BidirectionalPathPrefixOf("a", "ab"))
	assert.False(t, BidirectionalPathPrefixOf("a.b", "a.c"))
}

func TestHasExistencePredicateOnPath(t *testing.T) {
	eq, err := matcher.NewComparisonExpr(matcher.KindEqual, "a", matcher.Int64Value(1), nil)
	assert.NoError(t, err)

	tree := matcher.NewAndExpr(
		eq,
		matcher.NewOrExpr(
			matcher.NewExistsExpr("b"),
			matcher.NewExistsExpr("c.d"),
		),
	)

	assert.True(t, HasExistencePredicateOnPath(tree, "b"))
	assert.True(t, HasExistencePredicateOnPath(tree, "c.d"))
	assert.False(t, HasExistencePredicateOnPath(tree, "a"))
	assert.False(t, HasExistencePredicateOnPath(tree, "c"))
}
