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
)

type RenameSuite struct {
	suite.Suite
}

func (s *RenameSuite) eq(path string) *matcher.ComparisonExpr {
	expr, err := matcher.NewComparisonExpr(matcher.KindEqual, path, matcher.Int64Value(1), nil)
	s.Require().NoError(err)
	return expr
}

func (s *RenameSuite) TestRenamesLeaf() {
	leaf := s.eq("a")
	ApplyRenames(leaf, map[string]string{"a": "b"})
	s.Equal("b", leaf.Path())
}

func (s *RenameSuite) TestRenamesDottedPrefix() {
	leaf := s.eq("a.x.y")
	ApplyRenames(leaf, map[string]string{"a": "b"})
	s.Equal("b.x.y", leaf.Path())

	exact := s.eq("a.x")
	ApplyRenames(exact, map[string]string{"a.x": "c"})
	s.Equal("c", exact.Path())
}

func (s *RenameSuite) TestDoesNotRenameNonPrefix() {
	leaf := s.eq("ab")
	ApplyRenames(leaf, map[string]string{"a": "b"})
	s.Equal("ab", leaf.Path())
}

func (s *RenameSuite) TestRenamesThroughLogicalNodes() {
	inner := s.eq("a")
	other := s.eq("c")
	tree := matcher.NewAndExpr(
		matcher.NewOrExpr(inner, matcher.NewNotExpr(other)),
		matcher.NewNorExpr(s.eq("a.b")),
	)
	ApplyRenames(tree, map[string]string{"a": "z"})
	s.Equal("z", inner.Path())
	s.Equal("c", other.Path())
}

func (s *RenameSuite) TestRenamesExprIdentifiers() {
	exprExpr, err := matcher.NewExprExpr("price > 10 && user.name == \"x\"")
	s.Require().NoError(err)
	ApplyRenames(exprExpr, map[string]string{"price": "cost", "user": "account"})

	fields := exprExpr.Fields()
	s.True(fields.Contain("cost"))
	s.True(fields.Contain("account.name"))
	s.False(fields.Contain("price"))
	s.Contains(exprExpr.Source(), "cost")
	s.NotContains(exprExpr.Source(), "price")
}

func (s *RenameSuite) TestSkipsArrayMatchingNodes() {
	filter := s.eq("x")
	elem, err := matcher.NewElemMatchExpr(matcher.KindElemMatchObject, "a", filter)
	s.Require().NoError(err)

	ApplyRenames(elem, map[string]string{"a": "b", "x": "y"})
	s.Equal("a", elem.Path())
	s.Equal("x", filter.Path())
}

func TestRenameSuite(t *testing.T) {
	suite.Run(t, new(RenameSuite))
}
