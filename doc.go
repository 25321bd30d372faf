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


// Package itemsearch answers launcher search-box queries against a fixed
// catalog of titled records.
//
// A Workflow loads the catalog, filters and ranks it for the query, and renders
// the launcher response. Every query yields exactly one response: catalog
// failures become a single non-actionable error item instead of an error.
//
//	w, err := itemsearch.Open(dir, config.Default())
//	if err != nil {
//	    return err
//	}
//	return w.Run(ctx, os.Args[1:], os.Stdout)
package itemsearch
