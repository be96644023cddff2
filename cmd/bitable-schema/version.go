package main

import (
	"fmt"

	"github.com/MKhiriev/bitable-schema/internal/service"
	"github.com/spf13/cobra"
)

func newVersionCmd(appInfo service.AppInfoService) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := appInfo.GetBuildInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", info.BuildCommit())
			return nil
		},
	}
}
