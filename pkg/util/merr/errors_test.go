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

package merr

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/suite"
)

type ErrSuite struct {
	suite.Suite
}

func (s *ErrSuite) TestCode() {
	err := WrapErrExprInvalid("kind %s is not a comparison", "$regex")
	s.ErrorIs(err, ErrExprInvalid)
	s.Equal(ErrExprInvalid.errCode, Code(err))

	s.Equal(int32(0), Code(nil))
	s.Equal(CodeUnknown, Code(errors.New("not ours")))
}

func (s *ErrSuite) TestWrap() {
	s.ErrorIs(WrapErrExprMissingValue("a.b"), ErrExprMissingValue)
	s.ErrorIs(WrapErrCollationInvalid("no_such_locale"), ErrCollationInvalid)
	s.ErrorIs(WrapErrGeometryInvalid("unsupported geometry type %T", 1), ErrGeometryInvalid)
	s.ErrorIs(WrapErrParameterInvalid("positive", -1), ErrParameterInvalid)

	err := WrapErrExprUnparsable("a >", errors.New("unexpected token"))
	s.ErrorIs(err, ErrExprUnparsable)
	s.Contains(err.Error(), "a >")
}

func (s *ErrSuite) TestIsDistinguishesCodes() {
	s.NotErrorIs(WrapErrExprInvalid("x"), ErrExprMissingValue)
	s.NotErrorIs(WrapErrCollationInvalid("x"), ErrGeometryInvalid)
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(ErrSuite))
}
