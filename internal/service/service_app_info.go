package service

import "github.com/MKhiriev/bitable-schema/models"

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{buildInfo: buildInfo}
}

func (s *appInfoService) GetBuildInfo() models.AppBuildInfo {
	return s.buildInfo
}
