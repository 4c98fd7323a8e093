// seehuhn.de/go/qualpal - qualitative colour palettes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package qualpal

import (
	"errors"
	"fmt"

	"seehuhn.de/go/qualpal/distance"
)

// ArgumentError indicates that an argument passed to one of the
// palette functions is invalid.
type ArgumentError struct {
	// Name identifies the argument, for example "n" or "cvd".
	Name string

	// Reason describes the problem, including the offending value
	// and the valid range where possible.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

func (err *ArgumentError) Error() string {
	msg := "invalid " + err.Name + ": " + err.Reason
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ArgumentError) Unwrap() error {
	return err.Err
}

func argErrorf(name, format string, args ...any) error {
	return &ArgumentError{Name: name, Reason: fmt.Sprintf(format, args...)}
}

func wrapArgError(name string, err error) error {
	return &ArgumentError{Name: name, Reason: "cannot use value", Err: err}
}

// IsInvalidArgument returns true if err is caused by an invalid argument.
func IsInvalidArgument(err error) bool {
	var argErr *ArgumentError
	return errors.As(err, &argErr)
}

// IsResourceLimit returns true if err indicates that a distance matrix
// would have exceeded the configured memory limit.
func IsResourceLimit(err error) bool {
	var memErr *distance.MemoryLimitError
	return errors.As(err, &memErr)
}
