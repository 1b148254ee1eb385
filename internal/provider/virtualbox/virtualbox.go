package virtualbox

import (
	"strings"

	"github.com/open-edge-platform/vm-box-publisher/internal/provider"
)

// defaultCommand packages the base VM into a box file. The placeholders are
// substituted by ExportCommand.
const defaultCommand = "vagrant package --base {{name}} --output {{output}}"

// VirtualBox exports boxes for the VirtualBox backend.
type VirtualBox struct {
	// CommandTemplate overrides the export command line. It may reference
	// {{name}} and {{output}}.
	CommandTemplate string
}

func init() {
	provider.Register(&VirtualBox{})
}

func (v *VirtualBox) Name() string {
	return "virtualbox"
}

func (v *VirtualBox) Extension() string {
	return ".box"
}

func (v *VirtualBox) ChecksumType() string {
	return "sha1"
}

func (v *VirtualBox) ExportCommand(boxName string, outputPath string) string {
	tmpl := v.CommandTemplate
	if tmpl == "" {
		tmpl = defaultCommand
	}
	cmd := strings.ReplaceAll(tmpl, "{{name}}", boxName)
	cmd = strings.ReplaceAll(cmd, "{{output}}", outputPath)
	return cmd
}
