// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks API request bodies before they reach the
// services: registration, login and post creation.
//
// A Validator reports the first problem found as one of the package's
// sentinel errors, so the HTTP layer can map each of them to its own
// response message. Passing field names limits the check to those fields.
package validators

import "context"

// Validator validates obj, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
