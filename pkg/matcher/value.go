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
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ValueKind tags the concrete type held by a Value.
// The zero value is ValueMissing, which is never legal inside a comparison.
type ValueKind int32

const (
	ValueMissing ValueKind = iota
	ValueNull
	ValueBool
	ValueInt64
	ValueDouble
	ValueString
)

func (k ValueKind) String() string {
	switch k {
	case ValueMissing:
		return "Missing"
	case ValueNull:
		return "Null"
	case ValueBool:
		return "Bool"
	case ValueInt64:
		return "Int64"
	case ValueDouble:
		return "Double"
	case ValueString:
		return "String"
	default:
		return "Invalid"
	}
}

// CanonicalType is the coarse type family used to decide whether two values
// are comparable at all. The numeric ranks follow the canonical document
// ordering, so cross-family comparison stays total.
type CanonicalType int32

const (
	CanonicalMissing CanonicalType = 0
	CanonicalNull    CanonicalType = 5
	CanonicalNumber  CanonicalType = 10
	CanonicalString  CanonicalType = 15
	CanonicalBool    CanonicalType = 40
)

// Value is an immutable tagged scalar carried by comparison leaves and $in
// equality members.
type Value struct {
	kind     ValueKind
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
}

func NullValue() Value {
	return Value{kind: ValueNull}
}

func BoolValue(v bool) Value {
	return Value{kind: ValueBool, boolVal: v}
}

func Int64Value(v int64) Value {
	return Value{kind: ValueInt64, intVal: v}
}

func DoubleValue(v float64) Value {
	return Value{kind: ValueDouble, floatVal: v}
}

func StringValue(v string) Value {
	return Value{kind: ValueString, strVal: v}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) CanonicalType() CanonicalType {
	switch v.kind {
	case ValueNull:
		return CanonicalNull
	case ValueBool:
		return CanonicalBool
	case ValueInt64, ValueDouble:
		return CanonicalNumber
	case ValueString:
		return CanonicalString
	default:
		return CanonicalMissing
	}
}

// IsNaN reports whether the value is a floating-point NaN.
func (v Value) IsNaN() bool {
	return v.kind == ValueDouble && math.IsNaN(v.floatVal)
}

func (v Value) IsNull() bool {
	return v.kind == ValueNull
}

// Raw returns the native Go representation, nil for null.
func (v Value) Raw() any {
	switch v.kind {
	case ValueBool:
		return v.boolVal
	case ValueInt64:
		return v.intVal
	case ValueDouble:
		return v.floatVal
	case ValueString:
		return v.strVal
	default:
		return nil
	}
}

// StrictEqual reports bitwise payload equality; NaN is strictly equal to NaN.
// This is the equality used by structural equivalence, not by the subsumption
// comparator.
func (v Value) StrictEqual(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case ValueDouble:
		return math.Float64bits(v.floatVal) == math.Float64bits(other.floatVal) ||
			(math.IsNaN(v.floatVal) && math.IsNaN(other.floatVal))
	default:
		return v == other
	}
}

// CompareValues returns a signed 3-way ordering of two values under the given
// collation. Values of different canonical families order by family rank.
// NaN orders below every other number and equal to itself, keeping the
// ordering total; subsumption-specific NaN handling happens in the caller.
func CompareValues(lhs, rhs Value, collation *Collation) int {
	lt, rt := lhs.CanonicalType(), rhs.CanonicalType()
	if lt != rt {
		return int(lt) - int(rt)
	}

	switch lt {
	case CanonicalNull, CanonicalMissing:
		return 0
	case CanonicalBool:
		switch {
		case lhs.boolVal == rhs.boolVal:
			return 0
		case rhs.boolVal:
			return -1
		default:
			return 1
		}
	case CanonicalNumber:
		return compareNumbers(lhs, rhs)
	case CanonicalString:
		if collation != nil {
			return collation.Compare(lhs.strVal, rhs.strVal)
		}
		return strings.Compare(lhs.strVal, rhs.strVal)
	default:
		return 0
	}
}

// Doubles represent every integer only up to 2^53; funneling an int64 through
// float64 beyond that conflates neighboring values, so each operand pair is
// compared in a lossless domain.
const (
	maxInt64PlusOneAsDouble float64 = 1 << 63
	safeIntegerBound        int64   = 1 << 53
)

func compareNumbers(lhs, rhs Value) int {
	switch {
	case lhs.kind == ValueInt64 && rhs.kind == ValueInt64:
		return compareInt64(lhs.intVal, rhs.intVal)
	case lhs.kind == ValueInt64:
		return compareInt64ToDouble(lhs.intVal, rhs.floatVal)
	case rhs.kind == ValueInt64:
		return -compareInt64ToDouble(rhs.intVal, lhs.floatVal)
	default:
		return compareDoubles(lhs.floatVal, rhs.floatVal)
	}
}

func compareInt64(l, r int64) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func compareDoubles(l, r float64) int {
	switch {
	case math.IsNaN(l) && math.IsNaN(r):
		return 0
	case math.IsNaN(l):
		return -1
	case math.IsNaN(r):
		return 1
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// compareInt64ToDouble compares an int64 with a double without a lossy round
// trip. Doubles beyond the int64 range order by sign; safe-range integers
// coerce to double exactly; a large integer against an in-range double is
// compared in the integer domain, where truncating the double is exact
// whenever the magnitudes overlap (doubles at or above 2^53 are integral).
func compareInt64ToDouble(l int64, r float64) int {
	switch {
	case math.IsNaN(r):
		return 1
	case r >= maxInt64PlusOneAsDouble:
		return -1
	case r < -maxInt64PlusOneAsDouble:
		return 1
	case l <= safeIntegerBound && l >= -safeIntegerBound:
		return compareDoubles(cast.ToFloat64(l), r)
	default:
		return compareInt64(l, int64(r))
	}
}
