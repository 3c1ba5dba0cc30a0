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
	stdjson "encoding/json"
)

// GeoPredicate selects the geometric relation a GeoExpr asserts.
type GeoPredicate int32

const (
	GeoWithin GeoPredicate = iota
	GeoIntersects
)

func (p GeoPredicate) String() string {
	switch p {
	case GeoWithin:
		return "$geoWithin"
	case GeoIntersects:
		return "$geoIntersects"
	default:
		return "Invalid"
	}
}

// GeoContainer is the geometry oracle consumed by the subsumption engine.
// Contains must be sound: it answers true only when the receiver region
// provably contains the other region, false when containment cannot be
// proven.
type GeoContainer interface {
	Contains(other GeoContainer) bool
}

// GeoExpr matches a field against a geometric region.
type GeoExpr struct {
	leafExpr
	predicate GeoPredicate
	region    GeoContainer
	geoJSON   bool
}

// NewGeoExpr builds a geo leaf. geoJSON marks regions constructed from the
// $geometry operator form; only those participate in subsumption.
func NewGeoExpr(path string, predicate GeoPredicate, region GeoContainer, geoJSON bool) *GeoExpr {
	return &GeoExpr{
		leafExpr:  leafExpr{kind: KindGeo, path: path},
		predicate: predicate,
		region:    region,
		geoJSON:   geoJSON,
	}
}

func (e *GeoExpr) Predicate() GeoPredicate {
	return e.predicate
}

func (e *GeoExpr) Region() GeoContainer {
	return e.region
}

// HasGeoJSON reports whether the region came from the $geometry form.
func (e *GeoExpr) HasGeoJSON() bool {
	return e.geoJSON
}

func (e *GeoExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*GeoExpr)
	// Region equality is identity, a conservative but sound choice.
	return ok && e.path == o.path && e.predicate == o.predicate &&
		e.geoJSON == o.geoJSON && e.region == o.region
}

func (e *GeoExpr) Serialize() []byte {
	return marshalDoc(map[string]any{
		e.path: map[string]any{e.predicate.String(): regionDoc(e.region, e.geoJSON)},
	})
}

// BucketGeoWithinExpr is the bucketed form of $geoWithin used against
// time-series buckets: it constrains the named measurement field of every
// document in the bucket rather than a field of the bucket itself, so it
// carries no path of its own.
type BucketGeoWithinExpr struct {
	field   string
	region  GeoContainer
	geoJSON bool
}

func NewBucketGeoWithinExpr(field string, region GeoContainer, geoJSON bool) *BucketGeoWithinExpr {
	return &BucketGeoWithinExpr{
		field:   field,
		region:  region,
		geoJSON: geoJSON,
	}
}

func (e *BucketGeoWithinExpr) Kind() MatchKind             { return KindBucketGeoWithin }
func (e *BucketGeoWithinExpr) Category() MatchCategory     { return CategoryOther }
func (e *BucketGeoWithinExpr) Path() string                { return "" }
func (e *BucketGeoWithinExpr) NumChildren() int            { return 0 }
func (e *BucketGeoWithinExpr) Child(i int) MatchExpression { return nil }

// Field returns the measurement field the bucket predicate constrains.
func (e *BucketGeoWithinExpr) Field() string {
	return e.field
}

func (e *BucketGeoWithinExpr) Region() GeoContainer {
	return e.region
}

func (e *BucketGeoWithinExpr) HasGeoJSON() bool {
	return e.geoJSON
}

func (e *BucketGeoWithinExpr) Equivalent(other MatchExpression) bool {
	o, ok := other.(*BucketGeoWithinExpr)
	return ok && e.field == o.field && e.geoJSON == o.geoJSON && e.region == o.region
}

func (e *BucketGeoWithinExpr) Serialize() []byte {
	return marshalDoc(map[string]any{
		"$_internalBucketGeoWithin": map[string]any{
			"withinRegion": regionDoc(e.region, e.geoJSON),
			"field":        e.field,
		},
	})
}

func regionDoc(region GeoContainer, geoJSON bool) map[string]any {
	key := "$center"
	if geoJSON {
		key = "$geometry"
	}
	var payload any = true
	if m, ok := region.(stdjson.Marshaler); ok {
		if raw, err := m.MarshalJSON(); err == nil {
			payload = stdjson.RawMessage(raw)
		}
	}
	return map[string]any{key: payload}
}
