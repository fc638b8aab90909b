package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Counter names tracked across a checking or reconciliation run.
const (
	WordsChecked            = "words-checked"
	WordsMisspelled         = "words-misspelled"
	WordsCorrected          = "words-corrected"
	WordsNotCorrected       = "words-not-corrected"
	GoogleWordsCorrected    = "google-words-corrected"
	GoogleWordsNotCorrected = "google-words-not-corrected"
	UserWordsCorrected      = "user-words-corrected"
	UserWordsAdded          = "user-words-added-to-dictionary"
	UserWordsDeleted        = "user-words-deleted"
)

// RunCounters accumulates the named counts for one run. It is the explicit
// per-run state object passed through the pipeline; a new one is created at
// the start of every phase.
type RunCounters struct {
	runID string
	phase string
	start time.Time

	mutex  sync.Mutex
	counts map[string]int
}

// NewRunCounters creates a zeroed counter set for the named phase.
func NewRunCounters(phase string) *RunCounters {
	return &RunCounters{
		runID:  uuid.NewString(),
		phase:  phase,
		start:  time.Now(),
		counts: make(map[string]int),
	}
}

// Inc increments a named counter by one.
func (c *RunCounters) Inc(name string) {
	c.Add(name, 1)
}

// Add increments a named counter by n.
func (c *RunCounters) Add(name string, n int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.counts[name] += n
}

// Get returns the current value of a named counter.
func (c *RunCounters) Get(name string) int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.counts[name]
}

// Snapshot returns a copy of all counters.
func (c *RunCounters) Snapshot() map[string]int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	snapshot := make(map[string]int, len(c.counts))
	for name, count := range c.counts {
		snapshot[name] = count
	}
	return snapshot
}

// RunID returns the unique identifier assigned to this run.
func (c *RunCounters) RunID() string {
	return c.runID
}

// Phase returns the phase name this counter set belongs to.
func (c *RunCounters) Phase() string {
	return c.phase
}

// Elapsed returns the time since the run started.
func (c *RunCounters) Elapsed() time.Duration {
	return time.Since(c.start)
}

// RunRecord is one persisted run summary.
type RunRecord struct {
	RunID     string         `json:"run_id"`
	Phase     string         `json:"phase"`
	StartTime time.Time      `json:"start_time"`
	Duration  time.Duration  `json:"duration"`
	Counts    map[string]int `json:"counts"`
}

// SaveRun appends the run's snapshot to the run history file in dataDir.
func SaveRun(dataDir string, c *RunCounters) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	historyPath := filepath.Join(dataDir, "runs.json")
	history, err := LoadHistory(dataDir)
	if err != nil {
		return err
	}

	history = append(history, RunRecord{
		RunID:     c.runID,
		Phase:     c.phase,
		StartTime: c.start,
		Duration:  c.Elapsed(),
		Counts:    c.Snapshot(),
	})

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode run history: %v", err)
	}
	if err := os.WriteFile(historyPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write run history: %v", err)
	}
	return nil
}

// LoadHistory reads the persisted run history from dataDir. A missing file
// is an empty history.
func LoadHistory(dataDir string) ([]RunRecord, error) {
	historyPath := filepath.Join(dataDir, "runs.json")
	data, err := os.ReadFile(historyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read run history: %v", err)
	}

	var history []RunRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to parse run history: %v", err)
	}
	return history, nil
}

// FormatCheckSummary renders the end-of-phase report for a checking run.
func FormatCheckSummary(c *RunCounters) string {
	return fmt.Sprintf("\nText spellchecked in %s\n\n"+
		"Checked %d words.\n"+
		"Found %d misspelt words.\n"+
		"Corrected %d words.\n"+
		"Unable to correct %d words.\n"+
		"Google corrected %d words.\n"+
		"Google could not correct %d words.\n",
		FormatDuration(c.Elapsed()),
		c.Get(WordsChecked),
		c.Get(WordsMisspelled),
		c.Get(WordsCorrected),
		c.Get(WordsNotCorrected),
		c.Get(GoogleWordsCorrected),
		c.Get(GoogleWordsNotCorrected))
}

// FormatApplySummary renders the end-of-phase report for a reconciliation run.
func FormatApplySummary(c *RunCounters) string {
	return fmt.Sprintf("\nUser applied %d word corrections.\n"+
		"User added %d words to dictionary.\n"+
		"User deleted %d words.\n",
		c.Get(UserWordsCorrected),
		c.Get(UserWordsAdded),
		c.Get(UserWordsDeleted))
}

// FormatDuration formats an elapsed time as 7h 5m 32.0s / 17m 12.0s / 45.1s.
func FormatDuration(d time.Duration) string {
	secs := d.Seconds()
	mins := int(secs) / 60
	secs -= float64(mins * 60)
	hours := mins / 60
	mins -= hours * 60

	var out string
	if hours > 0 {
		out += fmt.Sprintf("%dh %dm ", hours, mins)
	} else if mins > 0 {
		out += fmt.Sprintf("%dm ", mins)
	}
	out += fmt.Sprintf("%.1fs", secs)
	return out
}
