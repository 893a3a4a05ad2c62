// Package imagery resolves a displayable image URL for an aircraft record.
//
// Resolution walks a fixed chain: an in-process hot cache, the durable
// key-value cache, then three external lookup tiers in priority order, and
// finally a locally synthesized placeholder. Every external failure is
// swallowed and falls through; the caller always gets a URL.
package imagery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coocood/freecache"
	json "github.com/goccy/go-json"

	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/store"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/logger"
	"github.com/nahubn1/airplane-recognition-quiz/pkg/metrics"
)

// Default resolver configuration constants.
const (
	defaultSummaryBase   = "https://en.wikipedia.org/api/rest_v1/page/summary"
	defaultMediaListBase = "https://en.wikipedia.org/api/rest_v1/page/media-list"
	defaultQueryBase     = "https://en.wikipedia.org/w/api.php"
	defaultTimeout       = 8 * time.Second
	defaultUserAgent     = "skyquiz/1.0 (aircraft recognition quiz)"
	defaultHotCacheBytes = 1 * 1024 * 1024
	thumbnailSize        = 800
)

// Resolution source labels, used for metrics.
const (
	sourceHotCache    = "hot_cache"
	sourceStore       = "store"
	sourceSummary     = "summary"
	sourceMediaList   = "media_list"
	sourcePageImage   = "page_image"
	sourcePlaceholder = "placeholder"
)

// Resolver resolves aircraft records to image URLs. Safe for concurrent use.
type Resolver struct {
	client        *http.Client
	userAgent     string
	summaryBase   string
	mediaListBase string
	queryBase     string

	hot *freecache.Cache
	kv  store.KV

	logger logger.Logger
}

// New creates a Resolver backed by the given durable cache.
func New(kv store.KV, opts ...Option) *Resolver {
	r := &Resolver{
		client:        &http.Client{Timeout: defaultTimeout},
		userAgent:     defaultUserAgent,
		summaryBase:   defaultSummaryBase,
		mediaListBase: defaultMediaListBase,
		queryBase:     defaultQueryBase,
		hot:           freecache.NewCache(defaultHotCacheBytes),
		kv:            kv,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.Named("imagery")
	}
	return r
}

// Resolve returns a displayable image URL for rec. It never fails: when all
// external tiers are exhausted a placeholder is synthesized locally. The
// placeholder is not cached, so a recovered network is retried on the next
// call.
func (r *Resolver) Resolve(ctx context.Context, rec catalog.Record) string {
	start := time.Now()
	defer func() {
		metrics.RecordImageResolveLatency(float64(time.Since(start).Milliseconds()))
	}()

	title := rec.Lookup()

	if cached, err := r.hot.Get([]byte(title)); err == nil {
		metrics.RecordImageResolution(sourceHotCache)
		return string(cached)
	}

	if value, ok, err := r.kv.Get(ctx, store.NamespaceImageCache, title); err == nil && ok && len(value) > 0 {
		// Re-prime the hot cache so the next hit skips the store.
		_ = r.hot.Set([]byte(title), value, 0)
		metrics.RecordImageResolution(sourceStore)
		return string(value)
	}

	tiers := []struct {
		source string
		lookup func(context.Context, string) (string, error)
	}{
		{sourceSummary, r.lookupSummary},
		{sourceMediaList, r.lookupMediaList},
		{sourcePageImage, r.lookupPageImage},
	}
	for _, tier := range tiers {
		imageURL, err := tier.lookup(ctx, title)
		if err != nil {
			metrics.RecordImageLookupError(tier.source)
			r.logger.Debug(ctx, "image tier missed",
				logger.String("tier", tier.source),
				logger.String("title", title),
				logger.Error(err),
			)
			continue
		}
		r.cache(ctx, title, imageURL)
		metrics.RecordImageResolution(tier.source)
		return imageURL
	}

	metrics.RecordImageResolution(sourcePlaceholder)
	return Placeholder(rec.Model, rec.Category)
}

// cache writes a successfully resolved URL to both cache layers.
func (r *Resolver) cache(ctx context.Context, title, imageURL string) {
	_ = r.hot.Set([]byte(title), []byte(imageURL), 0)
	if err := r.kv.Set(ctx, store.NamespaceImageCache, title, []byte(imageURL)); err != nil {
		r.logger.Warn(ctx, "image cache write failed",
			logger.String("title", title),
			logger.Error(err),
		)
	}
}

// lookupSummary queries the page-summary endpoint: thumbnail first, full
// original image as the fallback field.
func (r *Resolver) lookupSummary(ctx context.Context, title string) (string, error) {
	var payload struct {
		Thumbnail struct {
			Source string `json:"source"`
		} `json:"thumbnail"`
		OriginalImage struct {
			Source string `json:"source"`
		} `json:"originalimage"`
	}
	endpoint := r.summaryBase + "/" + url.PathEscape(title)
	if err := r.getJSON(ctx, endpoint, &payload); err != nil {
		return "", err
	}
	if payload.Thumbnail.Source != "" {
		return payload.Thumbnail.Source, nil
	}
	if payload.OriginalImage.Source != "" {
		return payload.OriginalImage.Source, nil
	}
	return "", fmt.Errorf("no image in summary for %q", title)
}

// lookupMediaList queries the media-list endpoint and takes the first image
// item's srcset entry.
func (r *Resolver) lookupMediaList(ctx context.Context, title string) (string, error) {
	var payload struct {
		Items []struct {
			Type   string `json:"type"`
			SrcSet []struct {
				Src string `json:"src"`
			} `json:"srcset"`
		} `json:"items"`
	}
	endpoint := r.mediaListBase + "/" + url.PathEscape(title)
	if err := r.getJSON(ctx, endpoint, &payload); err != nil {
		return "", err
	}
	for _, item := range payload.Items {
		if item.Type != "image" || len(item.SrcSet) == 0 {
			continue
		}
		src := item.SrcSet[0].Src
		if src == "" {
			continue
		}
		// Media-list srcs are scheme-relative.
		if strings.HasPrefix(src, "//") {
			src = "https:" + src
		}
		return src, nil
	}
	return "", fmt.Errorf("no image in media list for %q", title)
}

// lookupPageImage queries the pageimages action API and takes the first
// page's thumbnail.
func (r *Resolver) lookupPageImage(ctx context.Context, title string) (string, error) {
	var payload struct {
		Query struct {
			Pages map[string]struct {
				Thumbnail struct {
					Source string `json:"source"`
				} `json:"thumbnail"`
			} `json:"pages"`
		} `json:"query"`
	}
	endpoint := fmt.Sprintf(
		"%s?action=query&format=json&prop=pageimages&piprop=thumbnail&pithumbsize=%d&titles=%s",
		r.queryBase, thumbnailSize, url.QueryEscape(title),
	)
	if err := r.getJSON(ctx, endpoint, &payload); err != nil {
		return "", err
	}
	for _, page := range payload.Query.Pages {
		if page.Thumbnail.Source != "" {
			return page.Thumbnail.Source, nil
		}
	}
	return "", fmt.Errorf("no page image for %q", title)
}

// getJSON performs one GET and decodes the JSON body. Non-2xx responses and
// malformed payloads are errors; the caller treats any error as a tier miss.
func (r *Resolver) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
