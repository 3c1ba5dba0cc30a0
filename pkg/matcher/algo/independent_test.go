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

	"github.com/stretchr/testify/suite"

	"github.com/milvus-io/matchexpr/pkg/matcher"
	"github.com/milvus-io/matchexpr/pkg/util/typeutil"
)

type IndependentSuite struct {
	suite.Suite
}

func (s *IndependentSuite) eq(path string) *matcher.ComparisonExpr {
	expr, err := matcher.NewComparisonExpr(matcher.KindEqual, path, matcher.Int64Value(1), nil)
	s.Require().NoError(err)
	return expr
}

func (s *IndependentSuite) fields(names ...string) typeutil.Set[string] {
	return typeutil.NewSet(names...)
}

func (s *IndependentSuite) TestRenameSafe() {
	s.True(IsRenameSafe(s.eq("a")))
	s.True(IsRenameSafe(matcher.NewAndExpr(s.eq("a"), matcher.NewNotExpr(s.eq("b")))))

	exprExpr, err := matcher.NewExprExpr("a > 1")
	s.Require().NoError(err)
	s.True(IsRenameSafe(exprExpr))

	elem, err := matcher.NewElemMatchExpr(matcher.KindElemMatchValue, "a", s.eq(""))
	s.Require().NoError(err)
	s.False(IsRenameSafe(elem))
	s.False(IsRenameSafe(matcher.NewAndExpr(s.eq("a"), elem)))
	s.False(IsRenameSafe(matcher.NewTextExpr("hello")))
	s.False(IsRenameSafe(matcher.NewWhereExpr("this.a > 1")))
}

func (s *IndependentSuite) TestIndependentOf() {
	s.True(IsIndependentOf(s.eq("a"), s.fields("b")))
	s.False(IsIndependentOf(s.eq("a"), s.fields("a")))

	// prefix overlap counts in both directions
	s.False(IsIndependentOf(s.eq("a.b"), s.fields("a")))
	s.False(IsIndependentOf(s.eq("a"), s.fields("a.b")))
	s.True(IsIndependentOf(s.eq("ab"), s.fields("a")))

	tree := matcher.NewAndExpr(s.eq("a"), matcher.NewOrExpr(s.eq("b"), s.eq("c")))
	s.True(IsIndependentOf(tree, s.fields("d")))
	s.False(IsIndependentOf(tree, s.fields("c")))
}

func (s *IndependentSuite) TestIndependentOfUnanalyzableTree() {
	elem, err := matcher.NewElemMatchExpr(matcher.KindElemMatchValue, "a", s.eq(""))
	s.Require().NoError(err)
	// unanalyzable trees are conservatively dependent on everything
	s.False(IsIndependentOf(elem, s.fields("z")))
}

func (s *IndependentSuite) TestIndependentOfExprFields() {
	exprExpr, err := matcher.NewExprExpr("price * qty > 100")
	s.Require().NoError(err)

	s.False(IsIndependentOf(exprExpr, s.fields("price")))
	s.False(IsIndependentOf(exprExpr, s.fields("qty.unit")))
	s.True(IsIndependentOf(exprExpr, s.fields("total")))
}

func (s *IndependentSuite) TestOnlyDependentOn() {
	s.True(IsOnlyDependentOn(s.eq("a"), s.fields("a", "b")))
	// a sub-path is covered by its root
	s.True(IsOnlyDependentOn(s.eq("a.b"), s.fields("a")))
	// the root is not covered by a sub-path
	s.False(IsOnlyDependentOn(s.eq("a"), s.fields("a.b")))
	s.False(IsOnlyDependentOn(s.eq("c"), s.fields("a", "b")))

	tree := matcher.NewAndExpr(s.eq("a"), s.eq("b.x"))
	s.True(IsOnlyDependentOn(tree, s.fields("a", "b")))
	s.False(IsOnlyDependentOn(tree, s.fields("a")))
}

func (s *IndependentSuite) TestOnlyDependentOnUnanalyzableTree() {
	s.False(IsOnlyDependentOn(matcher.NewTextExpr("hello"), s.fields("a")))
}

func TestIndependentSuite(t *testing.T) {
	suite.Run(t, new(IndependentSuite))
}
