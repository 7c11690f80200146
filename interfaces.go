/*
 * interfaces.go, part of gombuild.
 *
 * Copyright 2026 The gombuild authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mbuild

import (
	"fmt"
	"strings"
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the name of a function in the calling stack (plus, optionally, some information in
	//the form "FunctionName: Extra info") and returns the resulting decoration slice. If passed an empty string,
	//it just returns the current value.
	Decorate(string) []string
	//Critical errors indicate a bug in a builder, not something the caller can correct.
	Critical() bool
}

type baseError struct {
	msg  string
	deco []string
}

func (err *baseError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(err.deco, ": "), err.msg)
}

func (err *baseError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append([]string{dec}, err.deco...)
	return err.deco
}

// ConfigError is returned when a parameter given to a builder or operation is invalid
// (a chain of length 0, a negative radius, a zero direction...). Nothing is built
// or modified when a ConfigError is returned.
type ConfigError struct {
	baseError
}

func (err *ConfigError) Critical() bool { return false }

// ConfigErrorf returns a new ConfigError with the formatted message, decorated with caller.
func ConfigErrorf(caller, format string, a ...any) *ConfigError {
	err := &ConfigError{baseError{msg: fmt.Sprintf(format, a...)}}
	err.Decorate(caller)
	return err
}

// PortError is returned when connecting ports that can't be connected (occupied, identical,
// or whose subtrees overlap).
type PortError struct {
	baseError
}

func (err *PortError) Critical() bool { return false }

func portErrorf(caller, format string, a ...any) *PortError {
	err := &PortError{baseError{msg: fmt.Sprintf(format, a...)}}
	err.Decorate(caller)
	return err
}

// StructureError signals a violation of the tree invariants (cycles, empty compounds,
// bonds between non-particles). It indicates a bug in a builder and is critical.
type StructureError struct {
	baseError
}

func (err *StructureError) Critical() bool { return true }

// StructureErrorf returns a new StructureError with the formatted message, decorated with caller.
func StructureErrorf(caller, format string, a ...any) *StructureError {
	err := &StructureError{baseError{msg: fmt.Sprintf(format, a...)}}
	err.Decorate(caller)
	return err
}

// ErrDecorate decorates err with the caller's name if err implements Error,
// and returns it. Other errors are returned untouched.
func ErrDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}
