package export

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/open-edge-platform/vm-box-publisher/internal/boxmeta"
	"github.com/open-edge-platform/vm-box-publisher/internal/provider"
	"github.com/open-edge-platform/vm-box-publisher/internal/utils/shell"
)

// Exporter drives the external packaging process and checksums its output.
type Exporter struct {
	Runner   shell.Runner
	Log      *zap.SugaredLogger
	Progress bool // show a byte progress bar while checksumming
}

// Export packages the VM for the given box into a fresh artifact file and
// returns its SHA-1 hex digest together with the relative artifact path
// ({namespace}/{ns_box}-{version}{ext}).
//
// The namespace directory is created if absent. A namespace path occupied by
// a regular file, or an already-existing artifact file, aborts the run — an
// artifact is never silently overwritten.
func (e *Exporter) Export(id boxmeta.Identity, version string, prov provider.Provider) (string, string, error) {
	if info, err := os.Stat(id.Namespace); err == nil && !info.IsDir() {
		return "", "", fmt.Errorf("%w: %q exists and is not a directory", boxmeta.ErrConflict, id.Namespace)
	}
	if err := os.MkdirAll(id.Namespace, 0755); err != nil {
		return "", "", fmt.Errorf("creating namespace directory %q: %w", id.Namespace, err)
	}

	artifactPath := path.Join(id.Namespace, id.Sanitized()+"-"+version+prov.Extension())
	fsPath := filepath.FromSlash(artifactPath)
	if _, err := os.Stat(fsPath); err == nil {
		return "", "", fmt.Errorf("%w: artifact %q already exists", boxmeta.ErrConflict, artifactPath)
	}

	cmdStr := prov.ExportCommand(id.BoxName, fsPath)
	e.Log.Infof("Exporting %s version %s with %s", id.Qualified(), version, prov.Name())
	e.Log.Debugf("Export command: %s", cmdStr)

	if err := e.Runner.Run(cmdStr, func(line string) {
		e.Log.Infof(line)
	}, func(line string) {
		e.Log.Errorf(line)
	}); err != nil {
		return "", "", fmt.Errorf("%w: %v", boxmeta.ErrExport, err)
	}

	checksum, err := e.checksumFile(fsPath)
	if err != nil {
		return "", "", fmt.Errorf("checksumming %q: %w", artifactPath, err)
	}
	e.Log.Infof("Artifact %s checksum %s", artifactPath, checksum)

	return checksum, artifactPath, nil
}
