// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the Lark Open
// Platform.
//
// The primary abstraction is [LarkAdapter], which decouples the schema
// service from the HTTP details. [NewLarkAdapter] returns the resty-backed
// implementation.
//
// Failures are reported through two typed errors defined in errors.go:
// [HTTPError] for non-2xx responses and [APIError] for 2xx responses whose
// "code" envelope field is non-zero or that lack an expected key. Both
// unwrap to a sentinel ([ErrHTTP], [ErrAPI]) so callers can use
// [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/bitable-schema/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/lark_adapter_mock.go -package=mock

// LarkAdapter defines the Lark Open API calls the schema tool needs.
// Every method performs blocking network I/O bounded by ctx; nothing is
// retried.
type LarkAdapter interface {
	// FetchTenantToken exchanges the app credentials for a tenant access
	// token with a single POST. Returns an [*APIError] if the API rejects
	// the credentials or omits the token.
	FetchTenantToken(ctx context.Context, appID, appSecret string) (models.Token, error)

	// ListFields pages through all field definitions of one table and
	// returns them in server order. Pagination stops when the server
	// reports no more pages or stops handing out a page token.
	ListFields(ctx context.Context, appToken, tableID string, token models.Token) ([]models.Field, error)
}
