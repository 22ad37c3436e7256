package catalog

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Source records how a load was satisfied.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// Fallback reasons, one per failure kind in the degradation chain.
const (
	ReasonUnconfigured = "source_unconfigured"
	ReasonTransport    = "transport_failure"
	ReasonDecode       = "decode_failure"
	ReasonEmpty        = "empty_catalog"
)

// DefaultTTL bounds how stale a cached store may be before a fresh fetch.
const DefaultTTL = 10 * time.Minute

// urlPlaceholder marks a deployment that never filled in the sheet URL.
const urlPlaceholder = "PASTE"

// Loader orchestrates the remote fetch, the session cache and the static
// fallback. Load never fails: every degradation returns the fallback store,
// so the storefront always has something to render.
type Loader struct {
	URL     string
	Cache   Cache
	Client  *http.Client
	TTL     time.Duration
	Aliases Aliases
	Log     *zap.Logger
	Metrics *LoadMetrics

	now func() time.Time
}

// NewLoader wires a loader with the default TTL, aliases and HTTP client.
func NewLoader(url string, cache Cache, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		URL:     url,
		Cache:   cache,
		Client:  &http.Client{},
		TTL:     DefaultTTL,
		Aliases: DefaultAliases(),
		Log:     log,
		now:     time.Now,
	}
}

// Load produces the store for one request. The decision chain short-circuits
// at the first satisfied step: configured URL, fresh cache entry, remote
// fetch, fallback. No retries; the next call starts the chain over.
func (l *Loader) Load(ctx context.Context, cacheKey string) (Store, Source) {
	if l.URL == "" || strings.Contains(l.URL, urlPlaceholder) {
		return l.fallback(ReasonUnconfigured, nil)
	}

	if store, ok := l.fromCache(ctx, cacheKey); ok {
		l.observe(SourceCache, "")
		return store, SourceCache
	}

	store, reason, err := l.fetchRemote(ctx)
	if reason != "" {
		return l.fallback(reason, err)
	}

	l.writeCache(ctx, cacheKey, store)
	l.observe(SourceRemote, "")
	return store, SourceRemote
}

// fromCache returns the cached store when an entry exists, deserializes and
// is younger than the TTL. A corrupt or expired entry is ignored, not
// deleted; the next successful load overwrites it.
func (l *Loader) fromCache(ctx context.Context, key string) (Store, bool) {
	if l.Cache == nil {
		return Store{}, false
	}

	payload, ok, err := l.Cache.Get(ctx, key)
	if err != nil {
		l.Log.Warn("catalog cache read failed", zap.Error(err))
		return Store{}, false
	}
	if !ok {
		return Store{}, false
	}

	entry, err := decodeEntry(payload)
	if err != nil {
		l.Log.Warn("catalog cache entry corrupt", zap.Error(err))
		return Store{}, false
	}

	age := l.clock().Sub(time.UnixMilli(entry.Timestamp))
	if age >= l.ttl() {
		return Store{}, false
	}
	return entry.Data, true
}

// fetchRemote fetches and builds the catalog. A non-empty reason means the
// caller must degrade to the fallback store.
func (l *Loader) fetchRemote(ctx context.Context) (Store, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return Store{}, ReasonTransport, err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := l.client().Do(req)
	if err != nil {
		return Store{}, ReasonTransport, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Store{}, ReasonTransport, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Store{}, ReasonDecode, err
	}

	rows := ParseDelimited(string(body))
	products := BuildProducts(rows, l.Aliases)
	if len(products) == 0 {
		// An empty-but-well-formed payload counts as failure, not as an
		// empty catalog.
		return Store{}, ReasonEmpty, nil
	}

	return BuildStore(products), "", nil
}

// writeCache stores the fresh catalog best-effort; a failure never affects
// the value handed to the caller.
func (l *Loader) writeCache(ctx context.Context, key string, store Store) {
	if l.Cache == nil {
		return
	}

	payload, err := encodeEntry(store, l.clock())
	if err != nil {
		l.Log.Warn("catalog cache encode failed", zap.Error(err))
		return
	}
	if err := l.Cache.Put(ctx, key, payload); err != nil {
		l.Log.Warn("catalog cache write failed", zap.Error(err))
	}
}

func (l *Loader) fallback(reason string, err error) (Store, Source) {
	l.Log.Warn("catalog load degraded to fallback",
		zap.String("reason", reason),
		zap.Error(err),
	)
	l.observe(SourceFallback, reason)
	return Fallback(), SourceFallback
}

func (l *Loader) observe(src Source, reason string) {
	if l.Metrics != nil {
		l.Metrics.Loads.WithLabelValues(string(src), reason).Inc()
	}
}

func (l *Loader) client() *http.Client {
	if l.Client != nil {
		return l.Client
	}
	return http.DefaultClient
}

func (l *Loader) ttl() time.Duration {
	if l.TTL > 0 {
		return l.TTL
	}
	return DefaultTTL
}

func (l *Loader) clock() time.Time {
	if l.now != nil {
		return l.now()
	}
	return time.Now()
}
