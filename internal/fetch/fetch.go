package fetch

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/open-edge-platform/vm-box-publisher/internal/boxmeta"
)

// Fetcher retrieves the existing remote index for a box, if any.
type Fetcher struct {
	Client *http.Client
	Log    *zap.SugaredLogger
}

// IndexURL joins the target base URL, the qualified box name, and the
// index filename.
func IndexURL(targetURL string, id boxmeta.Identity) string {
	return strings.TrimRight(targetURL, "/") + "/" + id.Qualified() + "/metadata.json"
}

// absentStatus reports whether a response status means "no index published
// yet". Besides a plain 404, object stores commonly answer 403 or 410 for
// missing keys, so those degrade to the first-publish case too. Anything
// else that is not a success is a transport failure.
func absentStatus(code int) bool {
	switch code {
	case http.StatusNotFound, http.StatusForbidden, http.StatusGone:
		return true
	}
	return false
}

// Fetch issues a blocking GET for the remote index. It returns (nil, nil)
// when no index exists yet; any other failure is fatal. A successfully
// parsed index whose name disagrees with the requested box aborts the run
// before it can corrupt an unrelated box's history.
func (f *Fetcher) Fetch(id boxmeta.Identity, targetURL string) (*boxmeta.Index, error) {
	url := IndexURL(targetURL, id)
	f.Log.Debugf("Fetching index from %s", url)

	resp, err := f.Client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", boxmeta.ErrTransport, url, err)
	}
	defer resp.Body.Close()

	if absentStatus(resp.StatusCode) {
		f.Log.Warnf("No existing index at %s (%s), starting a fresh one", url, resp.Status)
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: unexpected status %s", boxmeta.ErrTransport, url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", boxmeta.ErrTransport, url, err)
	}

	idx, err := boxmeta.ParseIndex(body)
	if err != nil {
		return nil, fmt.Errorf("index at %s: %w", url, err)
	}

	if idx.Name != id.Qualified() {
		return nil, fmt.Errorf("%w: index at %s names %q, expected %q",
			boxmeta.ErrIdentity, url, idx.Name, id.Qualified())
	}

	f.Log.Infof("Fetched existing index with %d version(s)", len(idx.Versions))
	return idx, nil
}
