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


// Package alfred renders search results in the launcher's script filter format.
//
// Output is always a single object with an "items" list:
//
//	{"items":[{"uid":"a1","title":"Widget","subtitle":"...","arg":"a1",
//	  "icon":{"path":"icons/w.png"},"match":"Widget Widget","autocomplete":"Widget"}]}
//
// Failures are rendered as a one-item response whose item has uid "error" and an
// empty arg, so the launcher treats it as non-actionable.
package alfred
