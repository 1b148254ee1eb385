package inspect

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// BoxInfo summarizes the contents of an exported box archive.
type BoxInfo struct {
	Entries int
	// HasMetadata reports whether the archive carries the per-box
	// metadata.json that Vagrant reads to learn the provider.
	HasMetadata bool
}

// VerifyBox checks that the exported artifact is a gzip-compressed tar
// archive and walks its entries. A box that is not a valid archive means the
// export process produced garbage, which is as fatal as a nonzero exit.
func VerifyBox(path string) (BoxInfo, error) {
	var info BoxInfo

	f, err := os.Open(path)
	if err != nil {
		return info, fmt.Errorf("opening artifact: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return info, fmt.Errorf("artifact %q is not gzip-compressed: %w", path, err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return info, fmt.Errorf("artifact %q is not a tar archive: %w", path, err)
		}
		info.Entries++
		if hdr.Name == "metadata.json" || hdr.Name == "./metadata.json" {
			info.HasMetadata = true
		}
	}

	if info.Entries == 0 {
		return info, fmt.Errorf("artifact %q is an empty archive", path)
	}
	return info, nil
}
