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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapOverAccumulatesPaths(t *testing.T) {
	inner := mustEq(t, "b", 1)
	elem, err := NewElemMatchExpr(KindElemMatchObject, "a", inner)
	require.NoError(t, err)
	tree := NewAndExpr(elem, mustEq(t, "c", 2))

	paths := map[MatchExpression]string{}
	MapOver(tree, func(e MatchExpression, path string) {
		paths[e] = path
	}, "")

	// the nested leaf sees its context through the $elemMatch path
	assert.Equal(t, "a.b", paths[inner])
	assert.Equal(t, "a", paths[elem])
	assert.Equal(t, "", paths[tree])
}

func TestMapOverIsPostOrder(t *testing.T) {
	leaf := mustEq(t, "a", 1)
	tree := NewNotExpr(leaf)

	var order []MatchKind
	MapOver(tree, func(e MatchExpression, _ string) {
		order = append(order, e.Kind())
	}, "")
	require.Len(t, order, 2)
	assert.Equal(t, KindEqual, order[0])
	assert.Equal(t, KindNot, order[1])
}

func TestFieldDeps(t *testing.T) {
	tree := NewAndExpr(
		mustEq(t, "a", 1),
		NewOrExpr(mustEq(t, "b.c", 2), NewExistsExpr("d")),
	)
	deps := FieldDeps(tree)
	assert.Equal(t, 3, deps.Len())
	assert.True(t, deps.Contain("a"))
	assert.True(t, deps.Contain("b.c"))
	assert.True(t, deps.Contain("d"))
}

func TestFieldDepsExprAndBucketGeo(t *testing.T) {
	exprExpr, err := NewExprExpr("price > 10")
	require.NoError(t, err)
	tree := NewAndExpr(exprExpr, NewBucketGeoWithinExpr("loc", nil, true))

	deps := FieldDeps(tree)
	assert.True(t, deps.Contain("price"))
	assert.True(t, deps.Contain("loc"))
}
