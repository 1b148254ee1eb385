package virtualbox

import (
	"testing"

	"github.com/open-edge-platform/vm-box-publisher/internal/provider"
)

func TestRegistersItself(t *testing.T) {
	p, ok := provider.Get("virtualbox")
	if !ok {
		t.Fatal("Expected virtualbox to be registered")
	}
	if p.Extension() != ".box" {
		t.Errorf("Extension = %q, expected .box", p.Extension())
	}
	if p.ChecksumType() != "sha1" {
		t.Errorf("ChecksumType = %q, expected sha1", p.ChecksumType())
	}
}

func TestExportCommandDefaultTemplate(t *testing.T) {
	v := &VirtualBox{}
	cmd := v.ExportCommand("box1", "acme/acme_box1-1.0.0.box")
	expected := "vagrant package --base box1 --output acme/acme_box1-1.0.0.box"
	if cmd != expected {
		t.Errorf("ExportCommand = %q, expected %q", cmd, expected)
	}
}

func TestExportCommandCustomTemplate(t *testing.T) {
	v := &VirtualBox{CommandTemplate: "mkbox {{name}} > {{output}}"}
	cmd := v.ExportCommand("box1", "out.box")
	if cmd != "mkbox box1 > out.box" {
		t.Errorf("ExportCommand = %q", cmd)
	}
}
