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
	"github.com/milvus-io/matchexpr/pkg/util/typeutil"
)

// MapOver walks the tree depth-first, invoking fn on every node post-order.
// path accumulates the dotted field context from the root, so fn sees each
// node's fully qualified path.
func MapOver(expr MatchExpression, fn func(expr MatchExpression, path string), path string) {
	if expr.Path() != "" {
		if path != "" {
			path += "."
		}
		path += expr.Path()
	}

	for i := 0; i < expr.NumChildren(); i++ {
		MapOver(expr.Child(i), fn, path)
	}
	fn(expr, path)
}

// FieldDeps is the dependency tracker: it collects the set of field paths the
// tree reads. Wrapped aggregation expressions contribute their own referenced
// fields; bucketed geo predicates contribute the measurement field they
// constrain.
func FieldDeps(expr MatchExpression) typeutil.Set[string] {
	deps := typeutil.NewSet[string]()
	MapOver(expr, func(e MatchExpression, path string) {
		switch e.Kind() {
		case KindExpression:
			deps.Insert(e.(*ExprExpr).Fields().Collect()...)
		case KindBucketGeoWithin:
			deps.Insert(e.(*BucketGeoWithinExpr).Field())
		default:
			if e.NumChildren() == 0 && path != "" {
				deps.Insert(path)
			}
		}
	}, "")
	return deps
}
