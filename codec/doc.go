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

// Package codec provides per-field JSON codecs that absorb the looseness of
// reddit's API responses.
//
// A [Codec] turns one raw JSON member into a typed Go value and back. The
// raw value handed to Decode follows one convention throughout the package:
// a nil [json.RawMessage] means the member was absent from its object, while
// the literal null means it was present but null. Plain codecs reject both;
// [Nullable] and [WithDefault] turn them into "no value".
//
// # Scalars
//
// [String], [Bool], [Int], [Int64] and [Float64] decode JSON scalars. Numeric
// and boolean codecs accept the shapes reddit emits interchangeably (1, 1.0,
// "1") through spf13/cast; [String] only accepts JSON strings.
//
// # Time
//
// [Timestamp] decodes seconds since the Unix epoch, integral or not, to a
// UTC [time.Time] with second precision. [Edited] handles reddit's "edited"
// member, which is false for unedited content and a timestamp otherwise.
//
// # Enumerations
//
// [EnumCodec] decodes bounded string enumerations without failing on values
// it does not know. An unrecognized string decodes to itself and reports
// false from [EnumCodec.Known]; encoding it writes the original string back.
//
//	sorts := codec.NewEnum(SortNew, SortTop)
//	v, _ := sorts.Decode(json.RawMessage(`"hot"`))
//	sorts.Known(v) // false, string(v) == "hot"
//
// # Composition
//
//	reports := codec.Nullable(codec.Bounded(codec.Int, 0, math.MaxInt32))
//	n, err := reports.Decode(nil) // n.IsPresent() == false, err == nil
//
// Codecs hold no mutable state and are safe for concurrent use.
package codec
