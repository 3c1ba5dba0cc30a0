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
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/milvus-io/matchexpr/pkg/util/merr"
)

// Collation is a pluggable string ordering. A nil *Collation means simple
// binary comparison. Expressions borrow the collation, they never own it.
type Collation struct {
	locale          string
	caseInsensitive bool
	collator        *collate.Collator
}

// NewCollation builds a collation for the given BCP 47 locale.
func NewCollation(locale string, caseInsensitive bool) (*Collation, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, merr.WrapErrCollationInvalid(locale)
	}

	opts := []collate.Option{}
	if caseInsensitive {
		opts = append(opts, collate.IgnoreCase)
	}
	return &Collation{
		locale:          locale,
		caseInsensitive: caseInsensitive,
		collator:        collate.New(tag, opts...),
	}, nil
}

func (c *Collation) Locale() string {
	return c.locale
}

// Compare returns a signed 3-way ordering of two strings under the collation.
func (c *Collation) Compare(a, b string) int {
	return c.collator.CompareString(a, b)
}

// CollationsMatch reports whether two borrowed collation references describe
// the same ordering. Either may be nil (binary comparison).
func CollationsMatch(a, b *Collation) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.locale == b.locale && a.caseInsensitive == b.caseInsensitive
}

// IsCollatableType reports whether ordering values of the given family
// depends on the collation.
func IsCollatableType(t CanonicalType) bool {
	return t == CanonicalString
}
