// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TenantTokenRequest is the body of the tenant_access_token/internal call.
type TenantTokenRequest struct {
	AppID     string `json:"app_id"`
	AppSecret string `json:"app_secret"`
}

// APIStatus carries the envelope fields every Lark Open API response has.
// A non-zero Code means the call failed even though HTTP returned 2xx. Code
// is nil when the body has no "code" key at all, which is also a failure.
type APIStatus struct {
	Code *int   `json:"code"`
	Msg  string `json:"msg"`
}

// TenantTokenResponse is the decoded answer of the tenant token endpoint.
type TenantTokenResponse struct {
	APIStatus

	TenantAccessToken string `json:"tenant_access_token"`

	// Expire is the token lifetime in seconds.
	Expire int `json:"expire"`
}

// FieldsPageResponse is one page of the table fields listing.
type FieldsPageResponse struct {
	APIStatus

	// Data is nil when the server omits the "data" object.
	Data *FieldsPage `json:"data"`
}

// FieldsPage is the payload of a fields listing page.
type FieldsPage struct {
	Items     []Field `json:"items"`
	HasMore   bool    `json:"has_more"`
	PageToken string  `json:"page_token"`
	Total     int     `json:"total"`
}
