package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/open-edge-platform/vm-box-publisher/internal/boxmeta"
	"github.com/open-edge-platform/vm-box-publisher/internal/export"
	"github.com/open-edge-platform/vm-box-publisher/internal/fetch"
	"github.com/open-edge-platform/vm-box-publisher/internal/index"
	"github.com/open-edge-platform/vm-box-publisher/internal/inspect"
	"github.com/open-edge-platform/vm-box-publisher/internal/provider"
	"github.com/open-edge-platform/vm-box-publisher/internal/provider/virtualbox"
	"github.com/open-edge-platform/vm-box-publisher/internal/utils/config"
	"github.com/open-edge-platform/vm-box-publisher/internal/utils/logger"
	"github.com/open-edge-platform/vm-box-publisher/internal/utils/network"
	"github.com/open-edge-platform/vm-box-publisher/internal/utils/shell"
)

// Publish command flags
var (
	boxName    string // Qualified box name, namespace/boxname
	targetURL  string // Base URL the published files are served from
	boxVersion string // Version string of the new artifact
)

// addPublishFlags registers the required publish flags on the root command
func addPublishFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&boxName, "name", "n", "",
		"Qualified box name in the form namespace/boxname")
	cmd.Flags().StringVarP(&targetURL, "target-url", "t", "",
		"Base URL the box artifacts and index are served from")
	cmd.Flags().StringVarP(&boxVersion, "version", "v", "",
		"Version string for the new artifact")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target-url")
	_ = cmd.MarkFlagRequired("version")
}

// executePublish drives one publish run: export, checksum, verify, fetch the
// remote index, merge, and write the local index. Every step is sequential
// and any failure aborts the run; files written by earlier steps stay on
// disk for the operator to inspect or clear.
func executePublish(cmd *cobra.Command, args []string) error {
	log := logger.Logger()
	helpers := config.NewConfigHelpers(loadedConfig)

	id, err := boxmeta.ParseIdentity(boxName)
	if err != nil {
		return err
	}

	if tmpl := helpers.ExportCommand(); tmpl != "" {
		provider.Register(&virtualbox.VirtualBox{CommandTemplate: tmpl})
	}
	prov, err := provider.MustGet(helpers.Provider())
	if err != nil {
		return err
	}

	exporter := &export.Exporter{
		Runner:   &shell.StreamRunner{},
		Log:      log,
		Progress: true,
	}
	checksum, artifactPath, err := exporter.Export(id, boxVersion, prov)
	if err != nil {
		log.Errorf("Export failed: %v", err)
		return err
	}

	if helpers.VerifyArtifact() {
		info, err := inspect.VerifyBox(filepath.FromSlash(artifactPath))
		if err != nil {
			log.Errorf("Artifact verification failed: %v", err)
			return err
		}
		if !info.HasMetadata {
			log.Warnf("Artifact %s carries no embedded metadata.json", artifactPath)
		}
		log.Debugf("Artifact %s verified: %d entries", artifactPath, info.Entries)
	}

	fetcher := &fetch.Fetcher{
		Client: network.NewSecureHTTPClient(helpers.HTTPTimeout()),
		Log:    log,
	}
	existing, err := fetcher.Fetch(id, targetURL)
	if err != nil {
		log.Errorf("Index fetch failed: %v", err)
		return err
	}

	writer := &index.Writer{Log: log}
	metaPath, err := writer.Write(id, id.Namespace, checksum, artifactPath,
		targetURL, existing, boxVersion, prov)
	if err != nil {
		log.Errorf("Index write failed: %v", err)
		return err
	}

	log.Infof("Published %s %s: upload %s and %s to %s",
		id.Qualified(), boxVersion, artifactPath, metaPath, targetURL)
	return nil
}
