package service

import (
	"context"

	"github.com/MKhiriev/bitable-schema/internal/config"
	"github.com/MKhiriev/bitable-schema/models"
)

// SchemaService drives one run of the tool: it picks line or document mode
// from cfg, fetches everything it needs and writes the output.
type SchemaService interface {
	Run(ctx context.Context, cfg *config.Config) error
}

type AppInfoService interface {
	GetBuildInfo() models.AppBuildInfo
}
