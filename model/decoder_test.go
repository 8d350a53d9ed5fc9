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

//go:build !integration

package model_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/reddit/kind"
	"rivaas.dev/reddit/model"
	"rivaas.dev/reddit/reference"
)

func TestNewDecoder(t *testing.T) {
	t.Parallel()

	_, err := model.NewDecoder(nil)
	require.ErrorIs(t, err, model.ErrNilRegistry)

	_, err = model.NewDecoder(model.StandardRegistry(), model.WithMaxDepth(0))
	require.ErrorIs(t, err, model.ErrInvalidMaxDepth)

	assert.Panics(t, func() {
		model.MustNewDecoder(nil)
	})

	reg := model.StandardRegistry()
	dec, err := model.NewDecoder(reg)
	require.NoError(t, err)
	assert.Same(t, reg, dec.Registry())
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]kind.Kind{kind.Listing, kind.More, kind.Comment, kind.Account, kind.Submission, kind.Subreddit},
		model.StandardRegistry().Kinds(),
	)

	tests := []struct {
		name    string
		kinds   []kind.Kind
		wantErr error
	}{
		{name: "no kinds", kinds: nil, wantErr: model.ErrNoKinds},
		{name: "message has no builder", kinds: []kind.Kind{kind.Message}, wantErr: model.ErrUnsupportedKind},
		{name: "made up kind", kinds: []kind.Kind{"t9"}, wantErr: model.ErrUnsupportedKind},
		{name: "duplicate", kinds: []kind.Kind{kind.Comment, kind.Comment}, wantErr: model.ErrDuplicateKind},
		{name: "subset", kinds: []kind.Kind{kind.Comment, kind.Listing}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg, err := model.NewRegistry(tt.kinds...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, reg)

				return
			}

			require.NoError(t, err)
			for _, k := range tt.kinds {
				assert.True(t, reg.Supports(k))
			}
			assert.False(t, reg.Supports(kind.Submission))
		})
	}
}

func TestDecode_RestrictedRegistry(t *testing.T) {
	t.Parallel()

	reg, err := model.NewRegistry(kind.Comment, kind.Listing)
	require.NoError(t, err)
	dec := model.MustNewDecoder(reg)

	_, err = dec.Decode(fixture(t, "submission.json"))
	var uk *model.UnrecognizedKindError
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, kind.Submission, uk.Kind)

	// The nested "more" child is not registered, so it is dropped.
	c, err := model.Decode[*model.Comment](dec, fixture(t, "comment.json"))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Replies().Len())
}

func TestDecode_Generic(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry())

	e, err := dec.Decode(fixture(t, "submission.json"))
	require.NoError(t, err)
	assert.IsType(t, &model.Submission{}, e)

	c, err := model.Decode[*model.Comment](dec, fixture(t, "submission.json"))
	require.ErrorIs(t, err, model.ErrKindMismatch)
	assert.Nil(t, c)
	assert.EqualError(t, err, "model: kind mismatch: want *model.Comment, got t3")

	id, err := model.Decode[model.Identifiable](dec, fixture(t, "account.json"))
	require.NoError(t, err)
	assert.Equal(t, "t2_1w72", id.FullName())
}

func TestDecodeReader(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry())
	e, err := dec.DecodeReader(bytes.NewReader(fixture(t, "subreddit.json")))
	require.NoError(t, err)
	assert.Equal(t, kind.Subreddit, e.Kind())

	_, err = dec.DecodeReader(failingReader{})
	require.ErrorIs(t, err, errRead)
}

var errRead = errors.New("read failed")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errRead
}

func TestDecode_FieldErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		fixture    string
		edit       func(d map[string]any)
		wantKind   kind.Kind
		wantField  string
		wantReason string
	}{
		{
			name:       "missing created_utc",
			fixture:    "submission.json",
			edit:       func(d map[string]any) { delete(d, "created_utc") },
			wantKind:   kind.Submission,
			wantField:  "created_utc",
			wantReason: "required field is missing",
		},
		{
			name:       "null author",
			fixture:    "comment.json",
			edit:       func(d map[string]any) { d["author"] = nil },
			wantKind:   kind.Comment,
			wantField:  "author",
			wantReason: "required field is null",
		},
		{
			name:      "score of wrong type",
			fixture:   "submission.json",
			edit:      func(d map[string]any) { d["score"] = "lots" },
			wantKind:  kind.Submission,
			wantField: "score",
		},
		{
			name:      "edited true",
			fixture:   "comment.json",
			edit:      func(d map[string]any) { d["edited"] = true },
			wantKind:  kind.Comment,
			wantField: "edited",
		},
		{
			name:       "name does not match id",
			fixture:    "submission.json",
			edit:       func(d map[string]any) { d["name"] = "t3_other" },
			wantKind:   kind.Submission,
			wantField:  "name",
			wantReason: `full name must be "t3_92dd8"`,
		},
		{
			name:       "name with wrong kind prefix",
			fixture:    "subreddit.json",
			edit:       func(d map[string]any) { d["name"] = "t3_2rc7j" },
			wantKind:   kind.Subreddit,
			wantField:  "name",
			wantReason: `full name must be "t5_2rc7j"`,
		},
		{
			name:       "upper case id",
			fixture:    "account.json",
			edit:       func(d map[string]any) { d["id"] = "1W72" },
			wantKind:   kind.Account,
			wantField:  "id",
			wantReason: "id must be lowercase base-36",
		},
		{
			name:      "negative num_reports",
			fixture:   "submission.json",
			edit:      func(d map[string]any) { d["num_reports"] = -1 },
			wantKind:  kind.Submission,
			wantField: "num_reports",
		},
		{
			name:      "unknown subreddit type is not an error but an array is",
			fixture:   "subreddit.json",
			edit:      func(d map[string]any) { d["subreddit_type"] = []string{"public"} },
			wantKind:  kind.Subreddit,
			wantField: "subreddit_type",
		},
	}

	dec := model.MustNewDecoder(model.StandardRegistry())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := dec.Decode(withData(t, tt.fixture, tt.edit))
			require.Error(t, err)

			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantKind, verr.Kind)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, "validation_error", verr.Code())
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, verr.Reason)
			}
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestDecode_IdentityErrorIsWrapped(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry())
	_, err := dec.Decode(withData(t, "submission.json", func(d map[string]any) {
		d["id"] = "not-an-id"
		d["name"] = "t3_not-an-id"
	}))

	var ierr *reference.IdentityError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "not-an-id", ierr.ID)
}

func TestDecode_ErrorMessage(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry())
	_, err := dec.Decode(withData(t, "submission.json", func(d map[string]any) {
		delete(d, "created_utc")
	}))

	assert.EqualError(t, err, `validating t3 field "created_utc": required field is missing`)
}

func TestDecode_AllErrors(t *testing.T) {
	t.Parallel()

	data := withData(t, "submission.json", func(d map[string]any) {
		delete(d, "created_utc")
		d["score"] = "lots"
		d["title"] = 7
	})

	first := model.MustNewDecoder(model.StandardRegistry())
	_, err := first.Decode(data)
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "created_utc", verr.Field)
	var multi *model.MultiError
	assert.NotErrorAs(t, err, &multi)

	all := model.MustNewDecoder(model.StandardRegistry(), model.WithAllErrors())
	_, err = all.Decode(data)
	require.ErrorAs(t, err, &multi)
	require.Len(t, multi.Errors, 3)
	assert.Equal(t, "created_utc", multi.Errors[0].Field)
	assert.Equal(t, "score", multi.Errors[1].Field)
	assert.Equal(t, "title", multi.Errors[2].Field)
	assert.Equal(t, "multiple_validation_errors", multi.Code())
	assert.Contains(t, multi.Error(), "3 validation errors occurred")
}

func TestDecode_Envelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{name: "missing kind", input: `{"data":{}}`, wantField: "kind"},
		{name: "kind not a string", input: `{"kind":3,"data":{}}`, wantField: "kind"},
		{name: "array", input: `[1,2]`, wantField: "envelope"},
		{name: "malformed", input: `{"kind":`, wantField: "envelope"},
		{name: "null", input: `null`, wantField: "envelope"},
	}

	for _, schema := range []bool{true, false} {
		dec := model.MustNewDecoder(model.StandardRegistry(), model.WithSchemaValidation(schema))

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				_, err := dec.Decode([]byte(tt.input))
				var verr *model.ValidationError
				require.ErrorAs(t, err, &verr, "schema=%v", schema)
				assert.Equal(t, tt.wantField, verr.Field, "schema=%v", schema)
				assert.Empty(t, verr.Kind)
				assert.Contains(t, err.Error(), "validating envelope")
			})
		}
	}
}

func TestDecode_MissingData(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry(), model.WithSchemaValidation(false))
	_, err := dec.Decode([]byte(`{"kind":"t3"}`))

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, kind.Submission, verr.Kind)
	assert.Equal(t, "data", verr.Field)
	assert.Equal(t, "required field is missing", verr.Reason)
}

func TestDecode_UnrecognizedKindWithoutData(t *testing.T) {
	t.Parallel()

	for _, schema := range []bool{true, false} {
		dec := model.MustNewDecoder(model.StandardRegistry(), model.WithSchemaValidation(schema))
		_, err := dec.Decode([]byte(`{"kind":"t9"}`))

		var uerr *model.UnrecognizedKindError
		require.ErrorAs(t, err, &uerr, "schema validation %v", schema)
		assert.Equal(t, kind.Kind("t9"), uerr.Kind)
	}

	dec := model.MustNewDecoder(model.StandardRegistry())
	_, err := dec.Decode([]byte(`{"kind":"t3"}`))
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "data", verr.Field)
}

func TestDecode_ListingSchema(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry())
	_, err := dec.Decode([]byte(`{"kind":"Listing","data":{"after":null}}`))

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Field, "children")

	noSchema := model.MustNewDecoder(model.StandardRegistry(), model.WithSchemaValidation(false))
	_, err = noSchema.Decode([]byte(`{"kind":"Listing","data":{"after":null}}`))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, kind.Listing, verr.Kind)
	assert.Equal(t, "children", verr.Field)
}

func TestDecode_UnrecognizedTopLevel(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry())
	_, err := dec.Decode([]byte(`{"kind":"t4","data":{"id":"abc"}}`))

	var uk *model.UnrecognizedKindError
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, kind.Message, uk.Kind)
	assert.Equal(t, `model: unrecognized kind "t4"`, err.Error())
}

func TestDecode_ListingPolicies(t *testing.T) {
	t.Parallel()

	data := fixture(t, "listing.json")

	t.Run("skip", func(t *testing.T) {
		t.Parallel()

		var stats model.Stats
		var skipped []int
		dec := model.MustNewDecoder(model.StandardRegistry(), model.WithEvents(model.Events{
			ChildSkipped: func(i int, _ error) { skipped = append(skipped, i) },
			Done:         func(s model.Stats) { stats = s },
		}))

		l, err := model.Decode[*model.Listing](dec, data)
		require.NoError(t, err)

		subs := model.Children[*model.Subreddit](l)
		require.Len(t, subs, 2)
		assert.Equal(t, "golang", subs[0].DisplayName())
		assert.Equal(t, "funny", subs[1].DisplayName())
		assert.Empty(t, l.Errors())
		assert.Equal(t, []int{1, 3, 4}, skipped)
		assert.Equal(t, model.Stats{Entities: 3, Skipped: 3}, stats)
	})

	t.Run("collect", func(t *testing.T) {
		t.Parallel()

		dec := model.MustNewDecoder(model.StandardRegistry(), model.WithListingPolicy(model.ListingCollect))
		l, err := model.Decode[*model.Listing](dec, data)
		require.NoError(t, err)
		assert.Equal(t, 2, l.Len())

		errs := l.Errors()
		require.Len(t, errs, 3)
		assert.Equal(t, 1, errs[0].Index)
		assert.Equal(t, kind.Message, errs[0].Kind)
		assert.Equal(t, 3, errs[1].Index)
		assert.Equal(t, kind.Subreddit, errs[1].Kind)
		assert.Equal(t, 4, errs[2].Index)
		assert.Equal(t, kind.Award, errs[2].Kind)

		var verr *model.ValidationError
		require.ErrorAs(t, errs[1], &verr)
		assert.Equal(t, "created_utc", verr.Field)
		assert.Equal(t, l.Len()+len(errs), 5)
	})

	t.Run("abort", func(t *testing.T) {
		t.Parallel()

		var stats model.Stats
		dec := model.MustNewDecoder(model.StandardRegistry(),
			model.WithListingPolicy(model.ListingAbort),
			model.WithEvents(model.Events{Done: func(s model.Stats) { stats = s }}),
		)
		_, err := dec.Decode(data)

		var cerr *model.ChildError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 3, cerr.Index, "unrecognized kinds never abort")
		assert.Equal(t, kind.Subreddit, cerr.Kind)
		assert.Equal(t, 1, stats.Errors)

		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "created_utc", verr.Field)
	})

	nestedUnknown := listingOf(
		fixture(t, "submission.json"),
		withData(t, "comment.json", func(d map[string]any) {
			d["replies"] = map[string]any{"kind": "t9", "data": map[string]any{}}
		}),
	)

	t.Run("abort on unknown kind nested in a child", func(t *testing.T) {
		t.Parallel()

		dec := model.MustNewDecoder(model.StandardRegistry(), model.WithListingPolicy(model.ListingAbort))
		l, err := dec.Decode(nestedUnknown)
		assert.Nil(t, l)

		var cerr *model.ChildError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 1, cerr.Index)
		assert.Equal(t, kind.Comment, cerr.Kind)

		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "replies", verr.Field)

		var uk *model.UnrecognizedKindError
		require.ErrorAs(t, err, &uk)
		assert.Equal(t, kind.Kind("t9"), uk.Kind)
	})

	t.Run("collect records the child's own kind", func(t *testing.T) {
		t.Parallel()

		dec := model.MustNewDecoder(model.StandardRegistry(), model.WithListingPolicy(model.ListingCollect))
		l, err := model.Decode[*model.Listing](dec, nestedUnknown)
		require.NoError(t, err)
		assert.Equal(t, 1, l.Len())

		errs := l.Errors()
		require.Len(t, errs, 1)
		assert.Equal(t, 1, errs[0].Index)
		assert.Equal(t, kind.Comment, errs[0].Kind)
	})
}

func TestDecode_UnknownKindsOnly(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry(), model.WithListingPolicy(model.ListingAbort))
	l, err := model.Decode[*model.Listing](dec, listingOf(
		[]byte(`{"kind":"t4","data":{}}`),
		fixture(t, "subreddit.json"),
		[]byte(`{"kind":"modaction","data":{}}`),
		fixture(t, "account.json"),
	))
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
	assert.Len(t, model.Children[*model.Subreddit](l), 1)
	assert.Len(t, model.Children[*model.Account](l), 1)
}

func TestDecode_MaxDepth(t *testing.T) {
	t.Parallel()

	data := fixture(t, "comment.json")

	shallow := model.MustNewDecoder(model.StandardRegistry(), model.WithMaxDepth(2))
	_, err := shallow.Decode(data)
	require.ErrorIs(t, err, model.ErrMaxDepthExceeded)

	// comment -> listing -> comment/more
	exact := model.MustNewDecoder(model.StandardRegistry(), model.WithMaxDepth(3))
	_, err = exact.Decode(data)
	require.NoError(t, err)

	// Depth failures inside a listing are not subject to the skip policy.
	_, err = shallow.Decode(listingOf(data))
	require.ErrorIs(t, err, model.ErrMaxDepthExceeded)
}

func TestDecode_Events(t *testing.T) {
	t.Parallel()

	var decoded []kind.Kind
	var stats model.Stats
	dec := model.MustNewDecoder(model.StandardRegistry(), model.WithEvents(model.Events{
		EntityDecoded: func(k kind.Kind) { decoded = append(decoded, k) },
		Done:          func(s model.Stats) { stats = s },
	}))

	_, err := dec.Decode(fixture(t, "comment.json"))
	require.NoError(t, err)

	assert.Equal(t, []kind.Kind{kind.Comment, kind.More, kind.Listing, kind.Comment}, decoded)
	assert.Equal(t, model.Stats{Entities: 4}, stats)

	_, err = dec.Decode([]byte(`{"kind":"t9","data":{}}`))
	require.Error(t, err)
	assert.Equal(t, model.Stats{Errors: 1}, stats)
}

func TestDecode_Concurrent(t *testing.T) {
	t.Parallel()

	dec := model.MustNewDecoder(model.StandardRegistry(), model.WithListingPolicy(model.ListingCollect))
	data := listingOf(fixture(t, "submission.json"), fixture(t, "comment.json"), fixture(t, "subreddit.json"))

	const workers = 16
	results := make([]*model.Listing, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = model.Decode[*model.Listing](dec, data)
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, 3, results[i].Len())
		assert.Empty(t, results[i].Errors())
	}
}

func TestListingPolicy_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "skip", model.ListingSkip.String())
	assert.Equal(t, "collect", model.ListingCollect.String())
	assert.Equal(t, "abort", model.ListingAbort.String())
	assert.Equal(t, "unknown", model.ListingPolicy(9).String())
}

func TestChildError(t *testing.T) {
	t.Parallel()

	inner := errors.New("boom")
	cerr := &model.ChildError{Index: 2, Kind: kind.Comment, Err: inner}
	assert.Equal(t, "listing child 2 (t1): boom", cerr.Error())
	require.ErrorIs(t, cerr, inner)

	cerr = &model.ChildError{Index: 0, Err: inner}
	assert.Equal(t, "listing child 0: boom", cerr.Error())
}

func TestMultiError(t *testing.T) {
	t.Parallel()

	multi := &model.MultiError{}
	assert.False(t, multi.HasErrors())
	require.NoError(t, multi.ErrorOrNil())

	multi.Add(&model.ValidationError{Kind: kind.Comment, Field: "body", Reason: "required field is missing"})
	assert.True(t, multi.HasErrors())
	require.Error(t, multi.ErrorOrNil())
	assert.Equal(t, `validating t1 field "body": required field is missing`, multi.Error())

	multi.Add(&model.ValidationError{Kind: kind.Comment, Field: "score", Reason: "must be a number"})
	assert.Contains(t, multi.Error(), "2 validation errors occurred")
}
