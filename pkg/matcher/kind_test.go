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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindFamilies(t *testing.T) {
	assert.True(t, KindEqual.IsComparison())
	assert.True(t, KindLTE.IsComparison())
	assert.False(t, KindInternalExprEqual.IsComparison())
	assert.False(t, KindIn.IsComparison())

	assert.True(t, KindInternalExprLT.IsInternalExprComparison())
	assert.False(t, KindLT.IsInternalExprComparison())

	assert.True(t, KindEqual.SupportsEquality())
	assert.True(t, KindLTE.SupportsEquality())
	assert.True(t, KindGTE.SupportsEquality())
	assert.False(t, KindLT.SupportsEquality())
	assert.False(t, KindGT.SupportsEquality())
}

func TestKindCategories(t *testing.T) {
	assert.Equal(t, CategoryLeaf, KindEqual.Category())
	assert.Equal(t, CategoryLeaf, KindIn.Category())
	assert.Equal(t, CategoryLeaf, KindGeo.Category())
	assert.Equal(t, CategoryLogical, KindAnd.Category())
	assert.Equal(t, CategoryLogical, KindNot.Category())
	assert.Equal(t, CategoryLogical, KindSchemaXor.Category())
	assert.Equal(t, CategoryArrayMatching, KindElemMatchValue.Category())
	assert.Equal(t, CategoryArrayMatching, KindElemMatchObject.Category())
	assert.Equal(t, CategoryOther, KindExpression.Category())
	assert.Equal(t, CategoryOther, KindText.Category())
	assert.Equal(t, CategoryOther, KindWhere.Category())
	assert.Equal(t, CategoryOther, KindBucketGeoWithin.Category())
}

func TestOperatorName(t *testing.T) {
	assert.Equal(t, "$eq", KindEqual.OperatorName())
	assert.Equal(t, "$_internalExprLte", KindInternalExprLTE.OperatorName())
	assert.Equal(t, "$elemMatch", KindElemMatchValue.OperatorName())
	assert.Equal(t, "$_internalBucketGeoWithin", KindBucketGeoWithin.OperatorName())
}
