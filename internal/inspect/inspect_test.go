package inspect

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

// writeBox creates a gzip tarball with the given entries at path.
func writeBox(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range entries {
		hdr := &tar.Header{Name: name, Mode: 0644, Size: int64(len(content))}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("Writing tar header: %v", err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("Writing tar entry: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Closing tar writer: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("Closing gzip writer: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Writing box file: %v", err)
	}
}

func TestVerifyBoxAcceptsValidArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.box")
	writeBox(t, path, map[string]string{
		"metadata.json":  `{"provider": "virtualbox"}`,
		"box-disk1.vmdk": "disk bytes",
	})

	info, err := VerifyBox(path)
	if err != nil {
		t.Fatalf("VerifyBox failed: %v", err)
	}
	if info.Entries != 2 {
		t.Errorf("Entries = %d, expected 2", info.Entries)
	}
	if !info.HasMetadata {
		t.Error("Expected embedded metadata.json to be detected")
	}
}

func TestVerifyBoxReportsMissingMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.box")
	writeBox(t, path, map[string]string{"box-disk1.vmdk": "disk bytes"})

	info, err := VerifyBox(path)
	if err != nil {
		t.Fatalf("VerifyBox failed: %v", err)
	}
	if info.HasMetadata {
		t.Error("Did not expect embedded metadata.json")
	}
}

func TestVerifyBoxRejectsNonGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.box")
	if err := os.WriteFile(path, []byte("plain bytes, not a box"), 0644); err != nil {
		t.Fatalf("Writing file: %v", err)
	}

	if _, err := VerifyBox(path); err == nil {
		t.Fatal("Expected error for non-gzip input, got none")
	}
}

func TestVerifyBoxRejectsGzippedNonTar(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte("just compressed text")); err != nil {
		t.Fatalf("Writing gzip: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("Closing gzip: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.box")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Writing file: %v", err)
	}

	if _, err := VerifyBox(path); err == nil {
		t.Fatal("Expected error for gzipped non-tar input, got none")
	}
}

func TestVerifyBoxRejectsMissingFile(t *testing.T) {
	if _, err := VerifyBox(filepath.Join(t.TempDir(), "absent.box")); err == nil {
		t.Fatal("Expected error for missing file, got none")
	}
}
