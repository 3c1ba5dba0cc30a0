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
	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/milvus-io/matchexpr/pkg/matcher"
)

// ApplyRenames rewrites field paths in the tree in place, depth-first.
// Aggregation-expression wrappers delegate to their own expression's rename
// logic. Array-matching and opaque nodes are left untouched; reaching one
// means the caller skipped the IsRenameSafe gate.
func ApplyRenames(expr matcher.MatchExpression, renames map[string]string) {
	if expr.Kind() == matcher.KindExpression {
		expr.(*matcher.ExprExpr).ApplyRename(renames)
		return
	}

	switch expr.Category() {
	case matcher.CategoryArrayMatching, matcher.CategoryOther:
		log.Debug("rename skipped non-renameable expression",
			zap.Stringer("kind", expr.Kind()),
			zap.String("path", expr.Path()))
		return
	case matcher.CategoryLeaf:
		if leaf, ok := expr.(matcher.Renamable); ok {
			leaf.ApplyRename(renames)
		}
	}

	for i := 0; i < expr.NumChildren(); i++ {
		ApplyRenames(expr.Child(i), renames)
	}
}
