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

package geometry

import (
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/xy"

	"github.com/milvus-io/matchexpr/pkg/matcher"
	"github.com/milvus-io/matchexpr/pkg/util/merr"
)

// Region is a planar geometry oracle over go-geom polygons. Contains is a
// conservative sound test: it proves containment only for hole-free convex
// outer regions, answering false whenever containment cannot be established.
type Region struct {
	g geom.T
}

// NewRegion wraps a polygonal geometry.
func NewRegion(g geom.T) (*Region, error) {
	switch g.(type) {
	case *geom.Polygon, *geom.MultiPolygon:
		return &Region{g: g}, nil
	default:
		return nil, merr.WrapErrGeometryInvalid("unsupported geometry type %T", g)
	}
}

// FromGeoJSON decodes a GeoJSON $geometry payload into a Region.
func FromGeoJSON(data []byte) (*Region, error) {
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, merr.WrapErrGeometryInvalid("malformed GeoJSON: %v", err)
	}
	return NewRegion(g)
}

// Geometry returns the wrapped geometry.
func (r *Region) Geometry() geom.T {
	return r.g
}

// MarshalJSON renders the region as GeoJSON.
func (r *Region) MarshalJSON() ([]byte, error) {
	return geojson.Marshal(r.g)
}

// Contains reports whether the receiver provably contains other. Every
// polygon of other must be contained in some polygon of the receiver.
func (r *Region) Contains(other matcher.GeoContainer) bool {
	o, ok := other.(*Region)
	if !ok {
		return false
	}

	for _, inner := range polygonsOf(o.g) {
		contained := false
		for _, outer := range polygonsOf(r.g) {
			if polygonContains(outer, inner) {
				contained = true
				break
			}
		}
		if !contained {
			return false
		}
	}
	return true
}

func polygonsOf(g geom.T) []*geom.Polygon {
	switch t := g.(type) {
	case *geom.Polygon:
		return []*geom.Polygon{t}
	case *geom.MultiPolygon:
		polygons := make([]*geom.Polygon, 0, t.NumPolygons())
		for i := 0; i < t.NumPolygons(); i++ {
			polygons = append(polygons, t.Polygon(i))
		}
		return polygons
	default:
		return nil
	}
}

// polygonContains proves outer ⊇ inner for hole-free convex outer rings:
// a convex ring contains a polygon iff it contains all of its vertices.
// Anything weaker is unprovable here and answers false.
func polygonContains(outer, inner *geom.Polygon) bool {
	if outer.NumLinearRings() != 1 {
		return false
	}
	ring := outer.LinearRing(0)
	if !ringIsConvex(ring) {
		return false
	}

	if !boundsContain(outer.Bounds(), inner.Bounds()) {
		return false
	}

	layout := outer.Layout()
	for i := 0; i < inner.NumLinearRings(); i++ {
		coords := inner.LinearRing(i).Coords()
		for _, coord := range coords {
			if !xy.IsPointInRing(layout, coord, ring.FlatCoords()) {
				return false
			}
		}
	}
	return true
}

func boundsContain(outer, inner *geom.Bounds) bool {
	return outer.Min(0) <= inner.Min(0) && outer.Max(0) >= inner.Max(0) &&
		outer.Min(1) <= inner.Min(1) && outer.Max(1) >= inner.Max(1)
}

func ringIsConvex(ring *geom.LinearRing) bool {
	coords := ring.Coords()
	// Closed rings repeat the first coordinate at the end.
	if len(coords) > 1 && coords[0].Equal(ring.Layout(), coords[len(coords)-1]) {
		coords = coords[:len(coords)-1]
	}
	if len(coords) < 3 {
		return false
	}

	sign := 0.0
	n := len(coords)
	for i := 0; i < n; i++ {
		a, b, c := coords[i], coords[(i+1)%n], coords[(i+2)%n]
		cross := (b[0]-a[0])*(c[1]-b[1]) - (b[1]-a[1])*(c[0]-b[0])
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
			continue
		}
		if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return sign != 0
}
