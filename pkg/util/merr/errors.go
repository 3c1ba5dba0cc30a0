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
	"github.com/cockroachdb/errors"
)

// Define leaf errors here,
// WARN: take care to add new error,
// check whether you can use the errors below before adding a new one.
// Name: Err + related prefix + error name
var (
	// Expression related
	ErrExprInvalid      = newMatchError("invalid match expression", 100)
	ErrExprMissingValue = newMatchError("comparison requires a concrete value", 101)
	ErrExprUnparsable   = newMatchError("failed to parse wrapped expression", 102)

	// Collation related
	ErrCollationInvalid = newMatchError("invalid collation locale", 200)

	// Geometry related
	ErrGeometryInvalid = newMatchError("invalid geometry", 300)

	// Parameter related
	ErrParameterInvalid = newMatchError("invalid parameter", 400)
)

// CodeUnknown marks errors from outside of this package.
const CodeUnknown int32 = -1

type matchError struct {
	msg     string
	errCode int32
}

func newMatchError(msg string, code int32) matchError {
	return matchError{
		msg:     msg,
		errCode: code,
	}
}

func (e matchError) Error() string {
	return e.msg
}

func (e matchError) code() int32 {
	return e.errCode
}

func (e matchError) Is(err error) bool {
	cause := errors.Cause(err)
	if target, ok := cause.(matchError); ok {
		return target.errCode == e.errCode
	}
	return false
}

// Code returns the error code of the given error,
// or CodeUnknown if the error is not produced by this package.
func Code(err error) int32 {
	if err == nil {
		return 0
	}

	cause := errors.Cause(err)
	if target, ok := cause.(matchError); ok {
		return target.code()
	}
	return CodeUnknown
}
