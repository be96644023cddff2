// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/MKhiriev/bitable-schema/internal/adapter"
	"github.com/MKhiriev/bitable-schema/internal/app"
	"github.com/MKhiriev/bitable-schema/internal/config"
	"github.com/MKhiriev/bitable-schema/internal/logger"
	"github.com/MKhiriev/bitable-schema/internal/render"
	"github.com/MKhiriev/bitable-schema/models"
)

const outputFileMode fs.FileMode = 0o644

type schemaService struct {
	adapter adapter.LarkAdapter
	stdout  io.Writer

	writeFile func(name string, data []byte, perm fs.FileMode) error

	logger *logger.Logger
}

func NewSchemaService(larkAdapter adapter.LarkAdapter, stdout io.Writer, logger *logger.Logger) SchemaService {
	return &schemaService{
		adapter:   larkAdapter,
		stdout:    stdout,
		writeFile: os.WriteFile,
		logger:    logger,
	}
}

// Run validates cfg before anything touches the network, then runs line
// mode when a single table ID is configured and document mode otherwise.
func (s *schemaService) Run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.SingleTable() {
		return s.printTable(ctx, cfg)
	}
	return s.writeDocument(ctx, cfg)
}

func (s *schemaService) printTable(ctx context.Context, cfg *config.Config) error {
	token, err := s.adapter.FetchTenantToken(ctx, cfg.Lark.AppID, cfg.Lark.AppSecret)
	if err != nil {
		return err
	}

	fields, err := s.adapter.ListFields(ctx, cfg.Bitable.AppToken, cfg.Bitable.TableID, token)
	if err != nil {
		return err
	}
	s.logger.Debug().Str("table_id", cfg.Bitable.TableID).Int("fields", len(fields)).Msg("table fetched")

	return render.Lines(s.stdout, fields)
}

// writeDocument fetches every resolved table and writes the Markdown file.
// Nothing is written unless all tables were fetched.
func (s *schemaService) writeDocument(ctx context.Context, cfg *config.Config) error {
	tables, missing := cfg.TableRefs()
	if len(missing) > 0 {
		s.logger.Warn().Msgf(app.MsgMissingTableIDsFormat, strings.Join(missing, ", "))
	}
	if len(tables) == 0 {
		return ErrNoTables
	}

	token, err := s.adapter.FetchTenantToken(ctx, cfg.Lark.AppID, cfg.Lark.AppSecret)
	if err != nil {
		return err
	}

	if err = s.fetchTables(ctx, cfg.Bitable.AppToken, token, tables); err != nil {
		return err
	}

	doc := render.Markdown(tables)
	if err = s.writeFile(cfg.Output.Path, []byte(doc), outputFileMode); err != nil {
		return fmt.Errorf("write schema document: %w", err)
	}

	_, err = fmt.Fprintf(s.stdout, app.MsgWroteFormat, cfg.Output.Path)
	return err
}

func (s *schemaService) fetchTables(ctx context.Context, appToken string, token models.Token, tables []models.Table) error {
	for i := range tables {
		fields, err := s.adapter.ListFields(ctx, appToken, tables[i].ID, token)
		if err != nil {
			return fmt.Errorf("fetch table %s: %w", tables[i].Key, err)
		}
		tables[i].Fields = fields

		s.logger.Debug().
			Str("key", tables[i].Key).
			Str("table_id", tables[i].ID).
			Int("fields", len(fields)).
			Msg("table fetched")
	}

	return nil
}
