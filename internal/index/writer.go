package index

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/open-edge-platform/vm-box-publisher/internal/boxmeta"
	"github.com/open-edge-platform/vm-box-publisher/internal/provider"
)

// Filename is the index document name, both remotely and locally.
const Filename = "metadata.json"

// Writer merges a freshly exported artifact into the index and writes the
// result to the local namespace directory. Publishing the written file to
// the remote location is the operator's separate step.
type Writer struct {
	Log *zap.SugaredLogger
}

// Write appends one provider descriptor for the new version to the existing
// index (or a fresh empty one) and serializes it to {parentDir}/metadata.json.
// A metadata.json already present locally aborts the run: it is the leftover
// of a prior unfinished publish and must not be clobbered.
func (w *Writer) Write(id boxmeta.Identity, parentDir string, checksum string, artifactPath string,
	targetURL string, existing *boxmeta.Index, version string, prov provider.Provider) (string, error) {

	metaPath := filepath.Join(parentDir, Filename)
	if _, err := os.Stat(metaPath); err == nil {
		return "", fmt.Errorf("%w: %q already exists", boxmeta.ErrConflict, metaPath)
	}

	downloadURL := strings.TrimRight(targetURL, "/") + "/" + id.Qualified() + "/" + artifactPath

	idx := existing
	if idx == nil {
		idx = boxmeta.NewIndex(id.Qualified())
	}

	if idx.HasVersion(version) {
		w.Log.Warnf("Index already lists version %s; appending a duplicate entry", version)
	}

	idx.Append(version, boxmeta.Provider{
		Name:         prov.Name(),
		URL:          downloadURL,
		Checksum:     checksum,
		ChecksumType: prov.ChecksumType(),
	})

	data, err := idx.Marshal()
	if err != nil {
		return "", err
	}

	// Stage next to the destination and rename, so a crash mid-write never
	// leaves a truncated metadata.json behind.
	tmpPath := metaPath + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing %q: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, metaPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming %q into place: %w", tmpPath, err)
	}

	w.Log.Infof("Wrote index with %d version(s) to %s", len(idx.Versions), metaPath)
	return metaPath, nil
}
