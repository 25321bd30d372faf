// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that the catalog resource does not exist.
	ErrNotFound = errors.New("catalog not found")

	// ErrMalformed indicates that the catalog could not be parsed into a record list.
	ErrMalformed = errors.New("catalog malformed")

	// ErrUnreadable indicates any other failure to acquire the catalog.
	ErrUnreadable = errors.New("catalog unreadable")

	// ErrPathRequired is returned when a file loader is created without a path.
	ErrPathRequired = errors.New("catalog path required")
)

// LoadError describes a failed catalog load.
// It unwraps to both its Kind and the underlying cause.
type LoadError struct {
	Kind   error  // ErrNotFound, ErrMalformed or ErrUnreadable
	Path   string // Resource that was being loaded
	Format Format
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
