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


// Package catalog supplies the ordered record list that queries run against.
//
// The Loader interface decouples the search pipeline from where records come
// from. Two implementations are provided:
//
//   - FileLoader: reads a JSON or YAML record list from disk in one read
//   - MemoryLoader: serves a fixed slice of records
//
// # Failure kinds
//
// Every load failure is a *LoadError whose Kind is one of ErrNotFound,
// ErrMalformed or ErrUnreadable. Callers branch with errors.Is:
//
//	records, err := loader.Load(ctx)
//	if errors.Is(err, catalog.ErrNotFound) {
//	    ...
//	}
//
// A single bad record fails the whole load; records are never skipped.
package catalog
