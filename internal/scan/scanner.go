package scan

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/handiism/cnsr-locator/internal/dataset"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a scan progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Report is the scan result for one dataset kind.
type Report struct {
	Kind         string              `json:"kind"`
	Root         string              `json:"root"`
	Participants []string            `json:"participants"`
	Incomplete   []dataset.Candidate `json:"incomplete,omitempty"`
}

// Scanner coordinates per-kind participant discovery.
type Scanner struct {
	kinds []dataset.Kind
	limit int

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewScanner creates a Scanner for kinds. onProgress may be nil.
func NewScanner(kinds []dataset.Kind, onProgress func(ProgressEvent)) *Scanner {
	return &Scanner{
		kinds:      kinds,
		limit:      len(kinds),
		onProgress: onProgress,
	}
}

// Scan looks for every kind under root. Empty root means the locators'
// default root. The first failing kind cancels the rest.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Report, error) {
	reports := make([]Report, len(s.kinds))

	g, ctx := errgroup.WithContext(ctx)
	if s.limit > 0 {
		g.SetLimit(s.limit)
	}

	for i, kind := range s.kinds {
		g.Go(func() error {
			report, err := s.scanKind(ctx, kind, root)
			if err != nil {
				s.progress(ProgressEvent{Message: fmt.Sprintf("Error scanning %s: %v", kind.Name, err), Level: LevelError})
				return fmt.Errorf("scan %s: %w", kind.Name, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *Scanner) scanKind(ctx context.Context, kind dataset.Kind, root string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	loc, err := dataset.New(kind, root, "")
	if err != nil {
		return Report{}, err
	}
	effective, err := loc.EffectiveRoot()
	if err != nil {
		return Report{}, err
	}

	s.progress(ProgressEvent{Message: fmt.Sprintf("Scanning %s for %s files", effective, kind.Glob()), Level: LevelVerbose})

	candidates, err := loc.Candidates()
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Kind:         kind.Name,
		Root:         effective,
		Participants: make([]string, 0, len(candidates)),
	}
	for _, c := range candidates {
		if c.Complete() {
			report.Participants = append(report.Participants, c.Participant)
			continue
		}
		report.Incomplete = append(report.Incomplete, c)
		s.progress(ProgressEvent{
			Message: fmt.Sprintf("%s participant %s is missing %s", kind.Name, c.Participant, strings.Join(c.Missing, ", ")),
			Level:   LevelWarning,
		})
	}

	if len(report.Participants) > 0 {
		s.progress(ProgressEvent{Message: fmt.Sprintf("Found %d %s participant(s)", len(report.Participants), kind.Name), Level: LevelSuccess})
	} else {
		s.progress(ProgressEvent{Message: fmt.Sprintf("No complete %s data", kind.Name), Level: LevelInfo})
	}

	return report, nil
}

func (s *Scanner) progress(event ProgressEvent) {
	if s.onProgress == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onProgress(event)
}
