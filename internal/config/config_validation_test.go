// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AllPresent(t *testing.T) {
	cfg := &Config{
		Lark:    Lark{AppID: "id", AppSecret: "secret"},
		Bitable: Bitable{AppToken: "app"},
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ReportsEveryMissingVar(t *testing.T) {
	err := (&Config{}).Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredVars)

	var missing *MissingVarsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"LARK_APP_ID", "LARK_APP_SECRET", "BITABLE_APP_TOKEN"}, missing.Names)
	assert.Equal(t, "Missing required vars: LARK_APP_ID, LARK_APP_SECRET, BITABLE_APP_TOKEN", err.Error())
}

func TestValidate_SingleMissingVar(t *testing.T) {
	cfg := &Config{Lark: Lark{AppID: "id", AppSecret: "secret"}}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Equal(t, "Missing required vars: BITABLE_APP_TOKEN", err.Error())
}

func TestValidate_TableIDNotRequired(t *testing.T) {
	cfg := &Config{
		Lark:    Lark{AppID: "id", AppSecret: "secret"},
		Bitable: Bitable{AppToken: "app", TableID: ""},
	}
	assert.NoError(t, cfg.Validate())
}
