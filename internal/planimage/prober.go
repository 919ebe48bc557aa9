// Package planimage checks that a floor-plan image URL is reachable before
// it is stored. Advisory only: an unreachable image is reported, never
// blocks the floor write.
package planimage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Prober struct {
	client *resty.Client
}

func NewProber(timeout time.Duration) *Prober {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0)
	return &Prober{client: client}
}

// Probe issues a HEAD request against an http(s) image URL. Data URLs and
// other schemes are skipped (the admin UI stores uploaded plans as data
// URLs).
func (p *Prober) Probe(ctx context.Context, imageURL string) error {
	if !strings.HasPrefix(imageURL, "http://") && !strings.HasPrefix(imageURL, "https://") {
		return nil
	}
	resp, err := p.client.R().SetContext(ctx).Head(imageURL)
	if err != nil {
		return fmt.Errorf("image probe failed: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("image probe got status %d", resp.StatusCode())
	}
	return nil
}
