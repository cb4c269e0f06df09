package actions

import (
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Opener opens websites in the default browser.
type Opener struct {
	log    *logrus.Entry
	delay  time.Duration
	opened atomic.Int64
}

// NewOpener creates an Opener that waits delay between consecutive opens,
// to avoid slamming the browser with a burst of tabs.
func NewOpener(log *logrus.Entry, delay time.Duration) *Opener {
	return &Opener{log: log, delay: delay}
}

// Open opens each URL after normalization and validation. Returns the
// number of successful opens.
func (o *Opener) Open(urls []string) int {
	ok := 0
	for i, raw := range urls {
		u := strings.TrimSpace(raw)
		if u == "" {
			o.log.Warn("Skipping empty URL")
			continue
		}
		norm, err := NormalizeURL(u)
		if err != nil {
			o.log.WithError(err).WithField("url", u).Warn("Skipping invalid URL")
			continue
		}
		if err := openBrowser(norm); err != nil {
			o.log.WithError(err).WithField("url", norm).Warn("Failed to open website")
		} else {
			o.log.WithField("url", norm).Info("Website opened")
			o.opened.Add(1)
			ok++
		}
		if i < len(urls)-1 && o.delay > 0 {
			time.Sleep(o.delay)
		}
	}
	return ok
}

// OpenedCount returns how many websites have been opened since startup.
func (o *Opener) OpenedCount() int {
	return int(o.opened.Load())
}

// NormalizeURL adds https:// when no scheme is present and validates the
// result.
func NormalizeURL(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	switch u.Scheme {
	case "http", "https", "ftp", "file":
	default:
		return "", fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" && u.Scheme != "file" {
		return "", fmt.Errorf("URL %q has no host", raw)
	}
	return u.String(), nil
}
