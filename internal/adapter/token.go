// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/bitable-schema/models"
)

const (
	tenantTokenPath     = "/auth/v3/tenant_access_token/internal"
	tenantTokenEndpoint = "token"
)

// FetchTenantToken implements [LarkAdapter].
func (l *larkAdapter) FetchTenantToken(ctx context.Context, appID, appSecret string) (models.Token, error) {
	var resp models.TenantTokenResponse
	body, err := l.doJSON(ctx, apiRequest{
		method: http.MethodPost,
		path:   tenantTokenPath,
		body:   models.TenantTokenRequest{AppID: appID, AppSecret: appSecret},
	}, &resp)
	if err != nil {
		return models.Token{}, fmt.Errorf("fetch tenant token: %w", err)
	}

	if err = mapAPIStatus(tenantTokenEndpoint, resp.APIStatus, body); err != nil {
		return models.Token{}, err
	}
	if resp.TenantAccessToken == "" {
		return models.Token{}, &APIError{
			Endpoint: tenantTokenEndpoint,
			Reason:   "tenant_access_token missing from response",
			Body:     string(body),
		}
	}

	token := models.Token{
		Value:  resp.TenantAccessToken,
		Expire: time.Duration(resp.Expire) * time.Second,
	}
	l.logger.Debug().Dur("expires_in", token.Expire).Msg("tenant access token issued")

	return token, nil
}
