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
	"fmt"

	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/milvus-io/matchexpr/pkg/matcher"
	"github.com/milvus-io/matchexpr/pkg/util/typeutil"
)

// ShouldExtractFunc describes the condition under which a subtree may be
// split out of its tree.
type ShouldExtractFunc func(expr matcher.MatchExpression, fields typeutil.Set[string]) bool

// Split partitions expr into two trees: the first contains the parts
// satisfying shouldExtract, the second the remaining parts. The conjunction
// of the two outputs is equivalent to expr; either side may be nil, never
// both. Split consumes expr: child ownership moves into the outputs.
func Split(expr matcher.MatchExpression, fields typeutil.Set[string], shouldExtract ShouldExtractFunc) (matcher.MatchExpression, matcher.MatchExpression) {
	if shouldExtract(expr, fields) {
		// The whole tree satisfies the extraction condition.
		return expr, nil
	}

	if expr.Category() != matcher.CategoryLogical {
		// A leaf is atomic and cannot be partially extracted.
		return nil, expr
	}

	var extracted []matcher.MatchExpression
	var remaining []matcher.MatchExpression

	switch e := expr.(type) {
	case *matcher.AndExpr:
		for _, child := range e.ReleaseChildren() {
			extractedChild, remainingChild := Split(child, fields, shouldExtract)
			if extractedChild == nil && remainingChild == nil {
				panic("split dropped both halves of a conjunct")
			}
			if extractedChild != nil {
				extracted = append(extracted, extractedChild)
			}
			if remainingChild != nil {
				remaining = append(remaining, remainingChild)
			}
		}
		return andOfNodes(extracted), andOfNodes(remaining)

	case *matcher.NorExpr:
		// A $nor splits because !(x | y) is equivalent to !x & !y. A clause
		// still moves only as an atomic whole: with 'b' extractable,
		// splitting {$nor: [{$and: [{a:1}, {b:1}]}]} into
		// {$nor: [{$and: [{a:1}]}]} and {$nor: [{$and: [{b:1}]}]} would
		// reject documents where either field is 1 instead of both.
		for _, child := range e.ReleaseChildren() {
			if shouldExtract(child, fields) {
				extracted = append(extracted, child)
			} else {
				remaining = append(remaining, child)
			}
		}
		return norOfNodes(extracted), norOfNodes(remaining)

	case *matcher.OrExpr, *matcher.SchemaXorExpr, *matcher.NotExpr:
		// Not decomposable: the whole node stays in the remainder.
		return nil, expr

	default:
		panic(fmt.Sprintf("unexpected logical expression %s in split", expr.Kind()))
	}
}

// SplitByFields splits expr under shouldExtract (IsIndependentOf when nil)
// and applies the renames to the extracted side only; the remainder keeps its
// paths, it stays in its original evaluation context.
func SplitByFields(expr matcher.MatchExpression, fields typeutil.Set[string], renames map[string]string, shouldExtract ShouldExtractFunc) (matcher.MatchExpression, matcher.MatchExpression) {
	if shouldExtract == nil {
		shouldExtract = IsIndependentOf
	}

	extracted, remainder := Split(expr, fields, shouldExtract)
	if extracted != nil {
		ApplyRenames(extracted, renames)
	}
	log.Debug("split match expression",
		zap.Bool("extracted", extracted != nil),
		zap.Bool("remainder", remainder != nil),
		zap.Int("numFields", fields.Len()),
		zap.Int("numRenames", len(renames)))
	return extracted, remainder
}

// andOfNodes rebuilds {$and: children}, collapsing a single child to itself
// and no children to nil ("always true", the caller omits it).
func andOfNodes(children []matcher.MatchExpression) matcher.MatchExpression {
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return matcher.NewAndExpr(children...)
	}
}

// norOfNodes rebuilds {$nor: children}, collapsing no children to nil. A
// single surviving clause stays wrapped: a $nor of one clause is its
// negation, not the clause itself.
func norOfNodes(children []matcher.MatchExpression) matcher.MatchExpression {
	if len(children) == 0 {
		return nil
	}
	return matcher.NewNorExpr(children...)
}
