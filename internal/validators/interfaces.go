// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the request payloads accepted by the backend
// stub before they reach persistence.
//
// Validate accepts optional field names to restrict the check to a subset of
// fields; without them every field of the payload is validated.
package validators

import "context"

// Validator validates arbitrary input values, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
