// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/bitable-schema/models"
)

const (
	fieldsPath     = "/bitable/v1/apps/{app_token}/tables/{table_id}/fields"
	fieldsEndpoint = "fields"

	// FieldsPageSize is the page_size sent with every fields listing call.
	FieldsPageSize = 200
)

// ListFields implements [LarkAdapter].
//
// The loop ends when has_more is false, or when the server claims more
// pages but returns no page_token; following an empty cursor would refetch
// the first page forever.
func (l *larkAdapter) ListFields(ctx context.Context, appToken, tableID string, token models.Token) ([]models.Field, error) {
	fields := make([]models.Field, 0)
	pageToken := ""

	for page := 1; ; page++ {
		query := url.Values{"page_size": {strconv.Itoa(FieldsPageSize)}}
		if pageToken != "" {
			query.Set("page_token", pageToken)
		}

		var resp models.FieldsPageResponse
		body, err := l.doJSON(ctx, apiRequest{
			method:     http.MethodGet,
			path:       fieldsPath,
			headers:    map[string]string{"Authorization": token.BearerHeader()},
			pathParams: map[string]string{"app_token": appToken, "table_id": tableID},
			query:      query,
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("list fields of table %s: %w", tableID, err)
		}

		if err = mapAPIStatus(fieldsEndpoint, resp.APIStatus, body); err != nil {
			return nil, err
		}
		if resp.Data == nil {
			break
		}

		fields = append(fields, resp.Data.Items...)
		l.logger.Debug().
			Str("table_id", tableID).
			Int("page", page).
			Int("items", len(resp.Data.Items)).
			Bool("has_more", resp.Data.HasMore).
			Msg("fields page fetched")

		if !resp.Data.HasMore || resp.Data.PageToken == "" {
			break
		}
		pageToken = resp.Data.PageToken
	}

	return fields, nil
}
