// Package stats persists monthly operational counters for the audit
// service: audits run, cache effectiveness and collaborator failures.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/geo-audit/backend/logging"
)

// MonthlyStats holds the counters for one calendar month.
type MonthlyStats struct {
	AuditsRun       int       `json:"audits_run"`
	CacheHits       int       `json:"cache_hits"`
	CacheMisses     int       `json:"cache_misses"`
	FetchErrors     int       `json:"fetch_errors"`
	ProbeFailures   int       `json:"probe_failures"`
	TotalDurationMs int64     `json:"total_duration_ms"`
	LastUpdated     time.Time `json:"last_updated"`
}

// Storage keeps monthly counters in memory and flushes them to a JSON file
// via atomic rename. Writes are coalesced through a background writer.
type Storage struct {
	mutex       sync.RWMutex
	months      map[string]*MonthlyStats // key: "YYYY-MM"
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
	done        chan struct{}
}

// NewStorage opens or creates the stats file under dataDir and starts the
// background writer.
func NewStorage(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	s := &Storage{
		months:      make(map[string]*MonthlyStats),
		filePath:    filepath.Join(dataDir, "stats.json"),
		writeBuffer: make(chan struct{}, 1),
		done:        make(chan struct{}),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading stats: %w", err)
	}

	go s.backgroundWriter()

	return s, nil
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return json.Unmarshal(data, &s.months)
}

func (s *Storage) save() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.months)
	s.mutex.RUnlock()

	if err != nil {
		return fmt.Errorf("marshaling stats: %w", err)
	}

	// Write to a temp file, then rename so readers never see a torn file.
	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("writing temporary file: %w", err)
	}
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("renaming temporary file: %w", err)
	}

	return nil
}

func (s *Storage) backgroundWriter() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.writeBuffer:
			if err := s.save(); err != nil {
				logging.Log.WithError(err).Warn("stats flush failed")
			}
		case <-ticker.C:
			if err := s.save(); err != nil {
				logging.Log.WithError(err).Warn("stats flush failed")
			}
		case <-s.done:
			return
		}
	}
}

func currentMonth() string {
	return time.Now().Format("2006-01")
}

func (s *Storage) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
	default:
		// write already pending
	}
}

// Record applies the delta to the current month's counters.
func (s *Storage) Record(delta MonthlyStats) {
	month := currentMonth()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	m, exists := s.months[month]
	if !exists {
		m = &MonthlyStats{}
		s.months[month] = m
	}

	m.AuditsRun += delta.AuditsRun
	m.CacheHits += delta.CacheHits
	m.CacheMisses += delta.CacheMisses
	m.FetchErrors += delta.FetchErrors
	m.ProbeFailures += delta.ProbeFailures
	m.TotalDurationMs += delta.TotalDurationMs
	m.LastUpdated = time.Now()

	if time.Since(s.lastWrite) > time.Minute {
		s.requestWrite()
		s.lastWrite = time.Now()
	}
}

// GetCurrentStats returns the counters for the current month.
func (s *Storage) GetCurrentStats() MonthlyStats {
	month := currentMonth()

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if m, exists := s.months[month]; exists {
		return *m
	}
	return MonthlyStats{}
}

// GetMonthlyStats returns the counters for a specific "YYYY-MM" month.
func (s *Storage) GetMonthlyStats(yearMonth string) (MonthlyStats, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if m, exists := s.months[yearMonth]; exists {
		return *m, true
	}
	return MonthlyStats{}, false
}

// GetAllMonths returns the recorded months, newest first.
func (s *Storage) GetAllMonths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.months))
	for month := range s.months {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months
}

// Cleanup drops every month except the current and previous one.
func (s *Storage) Cleanup() {
	now := time.Now()
	current := now.Format("2006-01")
	previous := now.AddDate(0, -1, 0).Format("2006-01")

	s.mutex.Lock()
	for key := range s.months {
		if key != current && key != previous {
			delete(s.months, key)
		}
	}
	s.mutex.Unlock()

	s.requestWrite()
	logging.Log.WithFields(logrus.Fields{
		"current":  current,
		"previous": previous,
	}).Debug("stats cleanup retained two months")
}

// Close flushes once more and stops the background writer.
func (s *Storage) Close() error {
	close(s.done)
	return s.save()
}
