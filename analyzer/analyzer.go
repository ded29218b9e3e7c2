// Package analyzer orchestrates the audit pipeline: fetch, domain probes,
// extraction, the category auditors, scoring and recommendations. Results
// are cached per URL with a TTL.
package analyzer

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/geo-audit/backend/audit"
	"github.com/geo-audit/backend/extractor"
	"github.com/geo-audit/backend/fetcher"
	"github.com/geo-audit/backend/logging"
	"github.com/geo-audit/backend/recommend"
	"github.com/geo-audit/backend/scoring"
	"github.com/geo-audit/backend/stats"
	"github.com/geo-audit/backend/urlutil"
)

type cacheEntry struct {
	result    *Result
	timestamp time.Time
}

// Analyzer runs audits and caches their results. All methods are safe for
// concurrent use.
type Analyzer struct {
	fetcher *fetcher.Fetcher

	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	lastCleanup     time.Time
	cleanupInterval time.Duration
	done            chan struct{}

	weights scoring.Weights
	stats   *stats.Storage
	now     func() time.Time
}

// Option adjusts an Analyzer at construction time.
type Option func(*Analyzer)

// WithFetcher substitutes the page fetcher.
func WithFetcher(f *fetcher.Fetcher) Option {
	return func(a *Analyzer) { a.fetcher = f }
}

// WithWeights overrides the default equal category weights.
func WithWeights(w scoring.Weights) Option {
	return func(a *Analyzer) {
		if len(w) > 0 {
			a.weights = w
		}
	}
}

// WithClock injects the time source, for reproducible freshness scoring.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// WithCacheTTL overrides how long results stay cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(a *Analyzer) { a.cacheTTL = ttl }
}

// New builds an Analyzer persisting its counters under dataDir and starts
// the cache cleanup goroutine.
func New(dataDir string, opts ...Option) (*Analyzer, error) {
	statsStorage, err := stats.NewStorage(dataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing stats storage: %w", err)
	}

	a := &Analyzer{
		fetcher:         fetcher.New(),
		cache:           make(map[string]cacheEntry),
		cacheTTL:        30 * time.Minute,
		maxCacheSize:    1000,
		cleanupInterval: 5 * time.Minute,
		lastCleanup:     time.Now(),
		done:            make(chan struct{}),
		weights:         scoring.DefaultWeights(),
		stats:           statsStorage,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	go a.periodicCleanup()

	return a, nil
}

// AuditOptions tune a single audit call. Zero values fall back to the
// Analyzer's configuration.
type AuditOptions struct {
	Weights scoring.Weights
}

// Audit runs the full pipeline for url. Cached results are returned as-is
// with Meta.Cached set.
func (a *Analyzer) Audit(ctx context.Context, rawURL string, opts AuditOptions) (*Result, error) {
	a.cacheMutex.RLock()
	cleanupDue := time.Since(a.lastCleanup) > a.cleanupInterval
	a.cacheMutex.RUnlock()
	if cleanupDue {
		go a.cleanup()
	}

	normalized, err := urlutil.Normalize(rawURL)
	if err != nil {
		return nil, &AuditError{Code: CodeValidation, Err: err}
	}

	weights := a.weights
	if len(opts.Weights) > 0 {
		weights = opts.Weights
	}

	cacheKey := cacheKeyFor(normalized, weights)
	if cached, ok := a.cachedResult(cacheKey); ok {
		a.stats.Record(stats.MonthlyStats{CacheHits: 1})
		return cached, nil
	}
	a.stats.Record(stats.MonthlyStats{CacheMisses: 1})

	start := time.Now()

	fetchResult, err := a.fetcher.Fetch(ctx, normalized)
	if err != nil && fetchResult == nil {
		a.stats.Record(stats.MonthlyStats{FetchErrors: 1})
		return nil, normalizeError(err)
	}

	signals := fetcher.DomainSignals{}
	if siteRoot, rootErr := urlutil.SiteRoot(fetchResult.FinalURL); rootErr == nil {
		signals = a.fetcher.ProbeDomainSignals(ctx, siteRoot)
	} else {
		a.stats.Record(stats.MonthlyStats{ProbeFailures: 1})
	}

	page, err := extractor.Extract(fetchResult.HTML, normalized)
	if err != nil {
		return nil, &AuditError{Code: CodeParse, Err: err}
	}

	auditResult := audit.Run(page, audit.FetchInfo{
		StatusCode:  fetchResult.StatusCode,
		FetchTimeMs: fetchResult.FetchTimeMs,
	}, &audit.DomainSignals{
		RobotsTxt:         signals.RobotsTxt,
		LLMsTxtExists:     signals.LLMsTxtExists,
		LLMsFullTxtExists: signals.LLMsFullTxtExists,
	}, a.now())

	summary := scoring.ComputeScore(auditResult.Categories, weights)
	recommendations := recommend.Generate(auditResult)

	duration := time.Since(start)
	result := &Result{
		URL:             normalized,
		AnalyzedAt:      a.now(),
		OverallScore:    summary.OverallScore,
		Grade:           summary.Grade,
		TotalPoints:     summary.TotalPoints,
		MaxPoints:       summary.MaxPoints,
		Categories:      auditResult.Categories,
		Recommendations: recommendations,
		RawData:         auditResult.RawData,
		Meta: Meta{
			Version:            Version,
			AnalysisDurationMs: duration.Milliseconds(),
		},
	}

	a.storeResult(cacheKey, result)
	a.stats.Record(stats.MonthlyStats{
		AuditsRun:       1,
		TotalDurationMs: duration.Milliseconds(),
	})

	logging.Log.WithFields(logrus.Fields{
		"url":        normalized,
		"score":      summary.OverallScore,
		"grade":      summary.Grade,
		"durationMs": duration.Milliseconds(),
	}).Info("audit completed")

	return result, nil
}

func (a *Analyzer) cachedResult(key string) (*Result, bool) {
	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	entry, found := a.cache[key]
	if !found || time.Since(entry.timestamp) >= a.cacheTTL {
		return nil, false
	}
	cached := *entry.result
	cached.Meta.Cached = true
	return &cached, true
}

func (a *Analyzer) storeResult(key string, result *Result) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache[key] = cacheEntry{result: result, timestamp: time.Now()}
}

// IsCached reports whether a fresh result exists for the URL under the
// default weights.
func (a *Analyzer) IsCached(rawURL string) bool {
	normalized, err := urlutil.Normalize(rawURL)
	if err != nil {
		return false
	}
	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	entry, found := a.cache[cacheKeyFor(normalized, a.weights)]
	return found && time.Since(entry.timestamp) < a.cacheTTL
}

// ClearCache drops all cached results.
func (a *Analyzer) ClearCache() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache = make(map[string]cacheEntry)
}

// CacheStats returns the current cache state and hit counters.
func (a *Analyzer) CacheStats() CacheStats {
	current := a.stats.GetCurrentStats()

	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	return CacheStats{
		Entries:    len(a.cache),
		Hits:       current.CacheHits,
		Misses:     current.CacheMisses,
		TTL:        a.cacheTTL,
		MaxEntries: a.maxCacheSize,
	}
}

// CurrentStats exposes this month's operational counters.
func (a *Analyzer) CurrentStats() stats.MonthlyStats {
	return a.stats.GetCurrentStats()
}

func (a *Analyzer) periodicCleanup() {
	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.cleanup()
		case <-a.done:
			return
		}
	}
}

// cleanup drops expired entries, then evicts oldest-first down to the size
// cap.
func (a *Analyzer) cleanup() {
	now := time.Now()

	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	for key, entry := range a.cache {
		if now.Sub(entry.timestamp) > a.cacheTTL {
			delete(a.cache, key)
		}
	}

	if len(a.cache) > a.maxCacheSize {
		type aged struct {
			key       string
			timestamp time.Time
		}
		entries := make([]aged, 0, len(a.cache))
		for key, entry := range a.cache {
			entries = append(entries, aged{key, entry.timestamp})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})
		for i := 0; i < len(entries)-a.maxCacheSize; i++ {
			delete(a.cache, entries[i].key)
		}
	}

	a.lastCleanup = now
}

// Shutdown stops background work and flushes counters.
func (a *Analyzer) Shutdown() error {
	close(a.done)
	return a.stats.Close()
}

// cacheKeyFor folds the URL and any non-default weights into an MD5 key so
// differently weighted audits never collide.
func cacheKeyFor(url string, weights scoring.Weights) string {
	keys := make([]string, 0, len(weights))
	for key := range weights {
		keys = append(keys, string(key))
	}
	sort.Strings(keys)

	h := md5.New()
	h.Write([]byte(url))
	for _, key := range keys {
		fmt.Fprintf(h, "|%s=%g", key, weights[audit.CategoryKey(key)])
	}
	return hex.EncodeToString(h.Sum(nil))
}
