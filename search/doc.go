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


// Package search filters and ranks catalog records against a free-text query.
//
// The Searcher makes a single pass over the catalog:
//   - Matching: a record matches when the lower-cased query is empty or occurs
//     anywhere in the lower-cased title or product name
//   - Ranking: each match gets a Priority, product-name prefix matches first
//   - Sorting: results are ordered by priority, then by title (case-sensitive),
//     keeping input order for identical keys
//
// Priorities are internal sort keys and never appear on the returned results.
package search
