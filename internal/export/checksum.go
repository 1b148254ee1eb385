package export

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// checksumFile reads the artifact once and returns its SHA-1 hex digest.
// The index wire format fixes the algorithm to sha1, so no other digest is
// offered. Box files run to gigabytes, hence the optional byte bar.
func (e *Exporter) checksumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening artifact: %w", err)
	}
	defer f.Close()

	h := sha1.New()

	if e.Progress {
		info, err := f.Stat()
		if err != nil {
			return "", fmt.Errorf("stat artifact: %w", err)
		}

		bar := progressbar.NewOptions64(info.Size(),
			progressbar.OptionSetDescription("checksumming"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		if _, err := io.Copy(io.MultiWriter(h, bar), f); err != nil {
			return "", fmt.Errorf("reading artifact: %w", err)
		}
		bar.Finish()
	} else {
		if _, err := io.Copy(h, f); err != nil {
			return "", fmt.Errorf("reading artifact: %w", err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
