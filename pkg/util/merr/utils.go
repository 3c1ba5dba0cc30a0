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

// WrapErrExprInvalid wraps ErrExprInvalid with the offending detail.
func WrapErrExprInvalid(format string, args ...any) error {
	return errors.Wrapf(ErrExprInvalid, format, args...)
}

// WrapErrExprMissingValue wraps ErrExprMissingValue with the field path.
func WrapErrExprMissingValue(path string) error {
	return errors.Wrapf(ErrExprMissingValue, "path=%s", path)
}

// WrapErrExprUnparsable wraps ErrExprUnparsable with the source text and cause.
func WrapErrExprUnparsable(source string, cause error) error {
	return errors.Wrapf(errors.WithSecondaryError(ErrExprUnparsable, cause), "source=%s", source)
}

// WrapErrCollationInvalid wraps ErrCollationInvalid with the locale name.
func WrapErrCollationInvalid(locale string) error {
	return errors.Wrapf(ErrCollationInvalid, "locale=%s", locale)
}

// WrapErrGeometryInvalid wraps ErrGeometryInvalid with the offending detail.
func WrapErrGeometryInvalid(format string, args ...any) error {
	return errors.Wrapf(ErrGeometryInvalid, format, args...)
}

// WrapErrParameterInvalid wraps ErrParameterInvalid with the expected/actual pair.
func WrapErrParameterInvalid(expected, actual any) error {
	return errors.Wrapf(ErrParameterInvalid, "expected=%v, actual=%v", expected, actual)
}
