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


package core

import "fmt"

// ValidateRecord validates a Record according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//
// NOT validated:
//   - Subtitle, Arg and ImageFile may be empty strings
//   - Arg uniqueness (see DuplicateArgs)
func ValidateRecord(record *Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyTitle)
	}

	return nil
}

// RequireField returns an ErrMissingField error naming field when value is nil.
// Loaders decode into pointer fields and use this to tell absent from empty.
func RequireField(field string, value *string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%w: %w: %s", ErrInvalidRecord, ErrMissingField, field)
	}
	return *value, nil
}
