// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the application: the shape of
// an email address, the minimum password length and non-blank notebook names.
//
// A Validator accepts any supported value and, optionally, a list of field
// names that restricts which rules run and in which order. Services inject a
// Validator and map the returned sentinels to their own error taxonomy.
package validators

import "context"

// Validator validates obj, restricted to fields when any are given.
// Unsupported types return ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
