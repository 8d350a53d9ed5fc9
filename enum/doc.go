// Copyright 2025 The Rivaas Authors
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

// Package enum holds reddit's bounded string enumerations.
//
// reddit adds values to these sets over time. Every type here keeps values
// it does not recognize instead of failing: an unknown value carries the
// raw string it was decoded from, reports true from IsUnknown, and encodes
// back to exactly that string.
//
//	d, _ := enum.DistinguishedCodec.Decode(json.RawMessage(`"gold"`))
//	d.IsUnknown() // true
//	d.String()    // "gold"
package enum
