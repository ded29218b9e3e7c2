package stats

import (
	"testing"
	"time"
)

func TestStorage(t *testing.T) {
	tempDir := t.TempDir()

	storage, err := NewStorage(tempDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	defer storage.Close()

	t.Run("Record", func(t *testing.T) {
		storage.Record(MonthlyStats{
			AuditsRun:       1,
			CacheHits:       2,
			CacheMisses:     3,
			FetchErrors:     4,
			TotalDurationMs: 50,
		})
		current := storage.GetCurrentStats()

		if current.AuditsRun != 1 {
			t.Errorf("Expected 1 audit run, got %d", current.AuditsRun)
		}
		if current.CacheHits != 2 {
			t.Errorf("Expected 2 cache hits, got %d", current.CacheHits)
		}
		if current.CacheMisses != 3 {
			t.Errorf("Expected 3 cache misses, got %d", current.CacheMisses)
		}
		if current.FetchErrors != 4 {
			t.Errorf("Expected 4 fetch errors, got %d", current.FetchErrors)
		}
		if current.TotalDurationMs != 50 {
			t.Errorf("Expected 50ms total duration, got %d", current.TotalDurationMs)
		}
	})

	t.Run("Persistence", func(t *testing.T) {
		if err := storage.save(); err != nil {
			t.Fatalf("Failed to save: %v", err)
		}

		storage2, err := NewStorage(tempDir)
		if err != nil {
			t.Fatalf("Failed to create second storage: %v", err)
		}
		defer storage2.Close()

		current := storage2.GetCurrentStats()
		if current.AuditsRun != 1 {
			t.Errorf("Expected 1 audit run after reload, got %d", current.AuditsRun)
		}
	})

	t.Run("Cleanup", func(t *testing.T) {
		oldMonth := time.Now().AddDate(0, -2, 0).Format("2006-01")
		storage.mutex.Lock()
		storage.months[oldMonth] = &MonthlyStats{
			AuditsRun:   100,
			LastUpdated: time.Now().AddDate(0, -2, 0),
		}
		storage.mutex.Unlock()

		storage.Cleanup()

		if _, exists := storage.GetMonthlyStats(oldMonth); exists {
			t.Error("Old stats should have been cleaned up")
		}
	})

	t.Run("MonthOrdering", func(t *testing.T) {
		previous := time.Now().AddDate(0, -1, 0).Format("2006-01")
		storage.mutex.Lock()
		storage.months[previous] = &MonthlyStats{AuditsRun: 5}
		storage.mutex.Unlock()

		months := storage.GetAllMonths()
		if len(months) < 2 {
			t.Fatalf("Expected at least 2 months, got %d", len(months))
		}
		if months[0] != currentMonth() {
			t.Errorf("Expected newest month first, got %s", months[0])
		}
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		done := make(chan bool)
		for i := 0; i < 10; i++ {
			go func() {
				for j := 0; j < 100; j++ {
					storage.Record(MonthlyStats{CacheHits: 1, CacheMisses: 1})
					storage.GetCurrentStats()
				}
				done <- true
			}()
		}

		for i := 0; i < 10; i++ {
			<-done
		}

		current := storage.GetCurrentStats()
		if current.CacheHits < 1000 {
			t.Errorf("Expected at least 1000 cache hits, got %d", current.CacheHits)
		}
		if current.CacheMisses < 1000 {
			t.Errorf("Expected at least 1000 cache misses, got %d", current.CacheMisses)
		}
	})
}
