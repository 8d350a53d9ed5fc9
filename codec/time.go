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

package codec

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cast"
)

var (
	// Timestamp decodes seconds since the Unix epoch into a UTC time with
	// second precision. Fractional seconds are truncated.
	Timestamp Codec[time.Time] = timestampCodec{}

	// Edited decodes reddit's "edited" member: false, null or absent mean
	// the content was never edited, a number is the edit timestamp.
	Edited Codec[Optional[time.Time]] = editedCodec{}
)

type timestampCodec struct{}

func (timestampCodec) Decode(raw json.RawMessage) (time.Time, error) {
	v, err := number(raw, "timestamp")
	if err != nil {
		return time.Time{}, err
	}

	return toTime(raw, v)
}

func (timestampCodec) Encode(v time.Time) (json.RawMessage, error) {
	return json.RawMessage(strconv.FormatInt(v.Unix(), 10)), nil
}

// Timestamps are limited to years 1 through 9999 so that Encode and
// time.Time formatting round-trip.
const (
	minUnixSeconds = -62135596800 // 0001-01-01T00:00:00Z
	maxUnixSeconds = 253402300799 // 9999-12-31T23:59:59Z
)

func toTime(raw json.RawMessage, v any) (time.Time, error) {
	secs, err := cast.ToFloat64E(v)
	if err != nil {
		return time.Time{}, newDecodeError("timestamp", raw, err)
	}
	if math.IsNaN(secs) || math.IsInf(secs, 0) || secs >= maxUnixSeconds+1 || secs < minUnixSeconds {
		return time.Time{}, newDecodeError("timestamp", raw, ErrOutOfRange)
	}

	return time.Unix(int64(secs), 0).UTC(), nil
}

type editedCodec struct{}

func (editedCodec) Decode(raw json.RawMessage) (Optional[time.Time], error) {
	if IsEmpty(raw) {
		return None[time.Time](), nil
	}

	v, err := scalar(raw, "edited")
	if err != nil {
		return None[time.Time](), err
	}

	if b, ok := v.(bool); ok {
		if b {
			return None[time.Time](), newDecodeError("edited", raw, ErrWrongShape)
		}
		return None[time.Time](), nil
	}

	t, err := toTime(raw, v)
	if err != nil {
		return None[time.Time](), err
	}

	return Some(t), nil
}

func (editedCodec) Encode(v Optional[time.Time]) (json.RawMessage, error) {
	t, ok := v.Get()
	if !ok {
		return json.RawMessage("false"), nil
	}

	return Timestamp.Encode(t)
}
