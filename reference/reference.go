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

package reference

import (
	"context"
	"net/url"

	"github.com/go-playground/validator/v10"

	"rivaas.dev/reddit/kind"
)

// validate is safe for concurrent use and never reconfigured after init.
var validate = validator.New(validator.WithRequiredStructEnabled())

// identity is the validated shape of a reference.
type identity struct {
	Kind string `validate:"required,oneof=t1 t2 t3 t4 t5 t6"`
	ID   string `validate:"required,alphanum,lowercase,max=13"`
}

// Reference addresses one remote entity by kind and id.
//
// References compare by identity only; see [Reference.Equal].
type Reference struct {
	client Client
	kind   kind.Kind
	id     string
}

// New returns a Reference for the entity of kind k with the given id.
// It performs no I/O.
//
// Errors:
//   - [ErrNilClient]: client is nil
//   - [*IdentityError]: k is not a thing kind or id is not lowercase base-36
func New(client Client, k kind.Kind, id string) (Reference, error) {
	if client == nil {
		return Reference{}, ErrNilClient
	}
	if err := ValidateIdentity(k, id); err != nil {
		return Reference{}, err
	}

	return Reference{client: client, kind: k, id: id}, nil
}

// ValidateIdentity checks that k is a thing kind and id is a lowercase
// base-36 identifier, returning an [*IdentityError] otherwise.
func ValidateIdentity(k kind.Kind, id string) error {
	if err := validate.Struct(identity{Kind: string(k), ID: id}); err != nil {
		return newIdentityError(k, id, err)
	}

	return nil
}

// FromFullName returns a Reference for a full name such as "t3_92dd8".
func FromFullName(client Client, fullName string) (Reference, error) {
	k, id, err := kind.ParseFullName(fullName)
	if err != nil {
		return Reference{}, err
	}

	return New(client, k, id)
}

// Kind returns the entity's kind.
func (r Reference) Kind() kind.Kind {
	return r.kind
}

// ID returns the entity's id.
func (r Reference) ID() string {
	return r.id
}

// FullName returns the entity's full name.
func (r Reference) FullName() string {
	return r.kind.FullName(r.id)
}

// Client returns the client operations are issued through.
func (r Reference) Client() Client {
	return r.client
}

// Equal reports whether r and other address the same entity.
// Clients are not compared.
func (r Reference) Equal(other Reference) bool {
	return r.kind == other.kind && r.id == other.id
}

// String implements fmt.Stringer.
func (r Reference) String() string {
	return r.FullName()
}

// execute issues op against the referenced entity.
func (r Reference) execute(ctx context.Context, op Operation, params url.Values) (Result, error) {
	return r.client.Execute(ctx, Request{
		Operation: op,
		Kind:      r.kind,
		ID:        r.id,
		Params:    params,
	})
}
