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

// Package algo implements the rewrite algebra over match expression trees:
// subsumption, field-independence analysis, tree splitting and path renaming.
package algo

import (
	"github.com/tidwall/gjson"

	"github.com/milvus-io/matchexpr/pkg/matcher"
)

// IsSubsetOf returns true if the documents matched by lhs are a subset of the
// documents matched by rhs, i.e. a document matched by lhs must also be
// matched by rhs, and false otherwise.
//
// The test is sound but intentionally incomplete: false is the safe default
// and may be answered for relations that actually hold. Callers depend on
// both properties, do not strengthen completeness or reorder the decision
// steps below.
func IsSubsetOf(lhs, rhs matcher.MatchExpression) bool {
	if lhs == nil || rhs == nil {
		panic("isSubsetOf invoked on a nil expression")
	}

	if lhs.Equivalent(rhs) {
		return true
	}

	// $and/$or are handled before leaf expressions, and recursion goes
	// through rhs before lhs. Swapping the recursion order would cause a
	// comparison like the following to fail, as neither the 'a' nor the 'b'
	// left hand clause matches the $and on the right hand side on its own.
	//     lhs: {a:5, b:5}
	//     rhs: {$or: [{a: 3}, {$and: [{a: 5}, {b: 5}]}]}

	if rhs.Kind() == matcher.KindOr {
		// lhs must match a subset of the documents matched by one clause.
		for i := 0; i < rhs.NumChildren(); i++ {
			if IsSubsetOf(lhs, rhs.Child(i)) {
				return true
			}
		}
		return false
	}

	if rhs.Kind() == matcher.KindAnd {
		// lhs must match a subset of the documents matched by every clause.
		for i := 0; i < rhs.NumChildren(); i++ {
			if !IsSubsetOf(lhs, rhs.Child(i)) {
				return false
			}
		}
		return true
	}

	if lhs.Kind() == matcher.KindAnd {
		// At least one clause of lhs must match a subset of the documents
		// matched by rhs.
		for i := 0; i < lhs.NumChildren(); i++ {
			if IsSubsetOf(lhs.Child(i), rhs) {
				return true
			}
		}
		return false
	}

	if lhs.Kind() == matcher.KindOr {
		// Every clause of lhs must match a subset of the documents matched
		// by rhs.
		for i := 0; i < lhs.NumChildren(); i++ {
			if !IsSubsetOf(lhs.Child(i), rhs) {
				return false
			}
		}
		return true
	}

	if lhs.Kind() == matcher.KindBucketGeoWithin && rhs.Kind() == matcher.KindBucketGeoWithin {
		if bucketGeoSubset(lhs.(*matcher.BucketGeoWithinExpr), rhs.(*matcher.BucketGeoWithinExpr)) {
			return true
		}
	}

	if lhs.Kind() == matcher.KindGeo && rhs.Kind() == matcher.KindGeo {
		if geoSubset(lhs.(*matcher.GeoExpr), rhs.(*matcher.GeoExpr)) {
			return true
		}
	}

	if rhs.Kind().IsComparison() {
		return subsetOfComparison(lhs, rhs.(*matcher.ComparisonExpr))
	}

	if rhs.Kind().IsInternalExprComparison() {
		return subsetOfInternalExpr(lhs, rhs.(*matcher.ComparisonExpr))
	}

	if rhs.Kind() == matcher.KindExists {
		return subsetOfExists(lhs, rhs.(*matcher.ExistsExpr))
	}

	if rhs.Kind() == matcher.KindIn {
		return subsetOfIn(lhs, rhs.(*matcher.InExpr))
	}

	return false
}

// bucketGeoSubset proves that the bucket region of lhs lies within the bucket
// region of rhs. The check goes through the serialized document of lhs, which
// is the one place the serialized form participates in the algebra: the
// "field" arguments must agree and the query must use the $geometry form.
func bucketGeoSubset(lhs, rhs *matcher.BucketGeoWithinExpr) bool {
	doc := lhs.Serialize()

	field := gjson.GetBytes(doc, "$_internalBucketGeoWithin.field")
	if field.Type != gjson.String || field.Str != rhs.Field() {
		return false
	}
	if !gjson.GetBytes(doc, "$_internalBucketGeoWithin.withinRegion.$geometry").Exists() {
		return false
	}

	if lhs.Region() == nil || rhs.Region() == nil {
		return false
	}
	// The region described by the query is within the region captured by the
	// index, so the index can serve the query.
	return rhs.Region().Contains(lhs.Region())
}

// geoSubset proves containment between two plain geo predicates on the same
// field, restricted to $geoWithin queries in the $geometry form.
func geoSubset(lhs, rhs *matcher.GeoExpr) bool {
	if lhs.Path() != rhs.Path() {
		return false
	}
	if lhs.Predicate() != matcher.GeoWithin || rhs.Predicate() != matcher.GeoWithin {
		return false
	}
	if !lhs.HasGeoJSON() || !rhs.HasGeoJSON() {
		return false
	}
	if lhs.Region() == nil || rhs.Region() == nil {
		return false
	}
	return rhs.Region().Contains(lhs.Region())
}

// subsetOfComparison handles rhs from the $lt/$lte/$eq/$gte/$gt family.
func subsetOfComparison(lhs matcher.MatchExpression, rhs *matcher.ComparisonExpr) bool {
	// An expression can only match a subset of the documents matched by
	// another if they are comparing the same field.
	if lhs.Path() != rhs.Path() {
		return false
	}

	if cmp, ok := lhs.(*matcher.ComparisonExpr); ok && cmp.Kind().IsComparison() {
		return comparisonSubset(cmp, rhs)
	}

	if in, ok := lhs.(*matcher.InExpr); ok {
		if in.HasRegexes() {
			return false
		}
		// Each equality member is an independent equality predicate and must
		// collapse into rhs on its own.
		subset := true
		in.RangeEqualities(func(v matcher.Value) bool {
			eq, err := matcher.NewComparisonExpr(matcher.KindEqual, in.Path(), v, in.Collation())
			if err != nil || !comparisonSubset(eq, rhs) {
				subset = false
				return false
			}
			return true
		})
		return subset
	}
	return false
}

func comparisonSubset(lhs, rhs *matcher.ComparisonExpr) bool {
	lv, rv := lhs.Value(), rhs.Value()

	if lv.CanonicalType() != rv.CanonicalType() {
		return false
	}

	// NaN compares equal only to itself, and only under equality-capable
	// operators.
	if lv.IsNaN() || rv.IsNaN() {
		if lhs.Kind().SupportsEquality() && rhs.Kind().SupportsEquality() {
			return lv.IsNaN() && rv.IsNaN()
		}
		return false
	}

	if !matcher.CollationsMatch(lhs.Collation(), rhs.Collation()) &&
		matcher.IsCollatableType(lv.CanonicalType()) {
		return false
	}

	// Either collation may order the values here: either they match, or lhs
	// carries no string payload.
	cmp := matcher.CompareValues(lv, rv, rhs.Collation())

	if lhs.Kind() == rhs.Kind() && cmp == 0 {
		return true
	}

	switch rhs.Kind() {
	case matcher.KindLT, matcher.KindLTE:
		switch lhs.Kind() {
		case matcher.KindLT, matcher.KindLTE, matcher.KindEqual:
			if rhs.Kind() == matcher.KindLTE {
				return cmp <= 0
			}
			return cmp < 0
		default:
			return false
		}
	case matcher.KindGT, matcher.KindGTE:
		switch lhs.Kind() {
		case matcher.KindGT, matcher.KindGTE, matcher.KindEqual:
			if rhs.Kind() == matcher.KindGTE {
				return cmp >= 0
			}
			return cmp > 0
		default:
			return false
		}
	default:
		return false
	}
}

// subsetOfInternalExpr handles rhs from the internal expression-derived
// comparison family: the same tie-break shape as comparisonSubset, but the
// ordering is a raw value comparison with no NaN or canonical-type special
// cases.
func subsetOfInternalExpr(lhs matcher.MatchExpression, rhs *matcher.ComparisonExpr) bool {
	if lhs.Path() != rhs.Path() {
		return false
	}

	cmpExpr, ok := lhs.(*matcher.ComparisonExpr)
	if !ok || !cmpExpr.Kind().IsInternalExprComparison() {
		return false
	}
	lv, rv := cmpExpr.Value(), rhs.Value()

	if !matcher.CollationsMatch(cmpExpr.Collation(), rhs.Collation()) &&
		matcher.IsCollatableType(lv.CanonicalType()) {
		return false
	}

	cmp := matcher.CompareValues(lv, rv, rhs.Collation())

	if cmpExpr.Kind() == rhs.Kind() && cmp == 0 {
		return true
	}

	switch rhs.Kind() {
	case matcher.KindInternalExprLT, matcher.KindInternalExprLTE:
		switch cmpExpr.Kind() {
		case matcher.KindInternalExprLT, matcher.KindInternalExprLTE, matcher.KindInternalExprEqual:
			if rhs.Kind() == matcher.KindInternalExprLTE {
				return cmp <= 0
			}
			return cmp < 0
		default:
			return false
		}
	case matcher.KindInternalExprGT, matcher.KindInternalExprGTE:
		switch cmpExpr.Kind() {
		case matcher.KindInternalExprGT, matcher.KindInternalExprGTE, matcher.KindInternalExprEqual:
			if rhs.Kind() == matcher.KindInternalExprGTE {
				return cmp >= 0
			}
			return cmp > 0
		default:
			return false
		}
	default:
		return false
	}
}

// subsetOfExists handles rhs {$exists: true}: which predicates imply the
// field is present.
func subsetOfExists(lhs matcher.MatchExpression, rhs *matcher.ExistsExpr) bool {
	// Defer the path check for $not until the subexpression is examined.
	if lhs.Kind() != matcher.KindNot && lhs.Path() != rhs.Path() {
		return false
	}

	if cmp, ok := lhs.(*matcher.ComparisonExpr); ok && cmp.Kind().IsComparison() {
		// Comparison leaves never hold missing values, so only null defeats
		// the existence implication.
		return !cmp.Value().IsNull()
	}

	switch lhs.Kind() {
	case matcher.KindElemMatchValue, matcher.KindElemMatchObject,
		matcher.KindExists, matcher.KindGeo, matcher.KindMod,
		matcher.KindRegex, matcher.KindSize, matcher.KindType:
		return true
	case matcher.KindIn:
		return !lhs.(*matcher.InExpr).HasNull()
	case matcher.KindNot:
		child := lhs.Child(0)
		if child == nil || child.Path() != rhs.Path() {
			return false
		}
		// Double negation recovers existence: "not equal to null" and
		// "not in a set containing null" both require the field.
		switch child.Kind() {
		case matcher.KindEqual:
			return child.(*matcher.ComparisonExpr).Value().IsNull()
		case matcher.KindIn:
			return child.(*matcher.InExpr).HasNull()
		default:
			return false
		}
	default:
		return false
	}
}

// subsetOfIn handles rhs {$in: [...]}: lhs must collapse into one of the
// allowed values.
func subsetOfIn(lhs matcher.MatchExpression, rhs *matcher.InExpr) bool {
	if lhs.Path() != rhs.Path() {
		return false
	}

	if rhs.HasRegexes() {
		return false
	}

	found := false
	rhs.RangeEqualities(func(v matcher.Value) bool {
		eq, err := matcher.NewComparisonExpr(matcher.KindEqual, rhs.Path(), v, rhs.Collation())
		if err == nil && subsetOfComparison(lhs, eq) {
			found = true
			return false
		}
		return true
	})
	return found
}
