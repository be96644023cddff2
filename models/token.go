// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is a tenant access token issued by the Lark auth endpoint.
//
// It is fetched once per run and never persisted or refreshed; Expire is kept
// only for diagnostics.
type Token struct {
	// Value is the opaque bearer credential sent in the Authorization header.
	Value string

	// Expire is the lifetime reported by the server. Zero when the server
	// did not report one.
	Expire time.Duration
}

// BearerHeader returns the value for the Authorization header.
func (t Token) BearerHeader() string {
	return "Bearer " + t.Value
}
