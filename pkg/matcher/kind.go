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

// MatchKind tags the concrete predicate type of a MatchExpression.
type MatchKind int32

const (
	KindUnknown MatchKind = iota

	// value comparisons
	KindEqual
	KindLT
	KindLTE
	KindGT
	KindGTE

	// expression-language-derived comparisons, a separate operator family
	KindInternalExprEqual
	KindInternalExprLT
	KindInternalExprLTE
	KindInternalExprGT
	KindInternalExprGTE

	// other leaves
	KindIn
	KindExists
	KindRegex
	KindMod
	KindSize
	KindType
	KindGeo
	KindBucketGeoWithin
	KindExpression

	// opaque leaves
	KindText
	KindWhere

	// array matching
	KindElemMatchValue
	KindElemMatchObject

	// logical connectives
	KindAnd
	KindOr
	KindNor
	KindNot
	KindSchemaXor
)

var kindNames = map[MatchKind]string{
	KindUnknown:           "Unknown",
	KindEqual:             "Equal",
	KindLT:                "LT",
	KindLTE:               "LTE",
	KindGT:                "GT",
	KindGTE:               "GTE",
	KindInternalExprEqual: "InternalExprEqual",
	KindInternalExprLT:    "InternalExprLT",
	KindInternalExprLTE:   "InternalExprLTE",
	KindInternalExprGT:    "InternalExprGT",
	KindInternalExprGTE:   "InternalExprGTE",
	KindIn:                "In",
	KindExists:            "Exists",
	KindRegex:             "Regex",
	KindMod:               "Mod",
	KindSize:              "Size",
	KindType:              "Type",
	KindGeo:               "Geo",
	KindBucketGeoWithin:   "BucketGeoWithin",
	KindExpression:        "Expression",
	KindText:              "Text",
	KindWhere:             "Where",
	KindElemMatchValue:    "ElemMatchValue",
	KindElemMatchObject:   "ElemMatchObject",
	KindAnd:               "And",
	KindOr:                "Or",
	KindNor:               "Nor",
	KindNot:               "Not",
	KindSchemaXor:         "SchemaXor",
}

func (k MatchKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Invalid"
}

// IsComparison returns true for the $lt/$lte/$eq/$gte/$gt family.
func (k MatchKind) IsComparison() bool {
	switch k {
	case KindEqual, KindLT, KindLTE, KindGT, KindGTE:
		return true
	default:
		return false
	}
}

// IsInternalExprComparison returns true for the expression-language-derived
// comparison family.
func (k MatchKind) IsInternalExprComparison() bool {
	switch k {
	case KindInternalExprEqual, KindInternalExprLT, KindInternalExprLTE,
		KindInternalExprGT, KindInternalExprGTE:
		return true
	default:
		return false
	}
}

// SupportsEquality returns true if the comparison operator admits the compared
// value itself (<=, =, >=).
func (k MatchKind) SupportsEquality() bool {
	switch k {
	case KindLTE, KindEqual, KindGTE,
		KindInternalExprLTE, KindInternalExprEqual, KindInternalExprGTE:
		return true
	default:
		return false
	}
}

// MatchCategory is the coarse structural classification of a MatchExpression.
type MatchCategory int32

const (
	// CategoryLeaf expressions compare a single field against a payload.
	CategoryLeaf MatchCategory = iota
	// CategoryLogical expressions combine child expressions.
	CategoryLogical
	// CategoryArrayMatching expressions evaluate sub-predicates against array
	// elements; their field dependencies are not independently renameable.
	CategoryArrayMatching
	// CategoryOther expressions are opaque to the rewrite algebra.
	CategoryOther
)

func (c MatchCategory) String() string {
	switch c {
	case CategoryLeaf:
		return "Leaf"
	case CategoryLogical:
		return "Logical"
	case CategoryArrayMatching:
		return "ArrayMatching"
	case CategoryOther:
		return "Other"
	default:
		return "Invalid"
	}
}

// Category returns the structural category of the kind.
// KindExpression is classified CategoryOther but is special-cased by the
// rename machinery, which delegates to the wrapped expression.
func (k MatchKind) Category() MatchCategory {
	switch k {
	case KindAnd, KindOr, KindNor, KindNot, KindSchemaXor:
		return CategoryLogical
	case KindElemMatchValue, KindElemMatchObject:
		return CategoryArrayMatching
	case KindText, KindWhere, KindExpression, KindBucketGeoWithin:
		return CategoryOther
	default:
		return CategoryLeaf
	}
}
