package extractor

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/divvyup/backend/internal/models"
)

// Step identifies a stage of the extraction pipeline. Preprocessing and
// TextDetection belong to the external OCR collaborator; the pipeline records
// them as checkpoints but receives already-recognized text.
type Step int

const (
	StepPreprocessing Step = iota
	StepTextDetection
	StepItemExtraction
	StepAIFallback
	StepCompleted
)

func (s Step) String() string {
	switch s {
	case StepPreprocessing:
		return "preprocessing"
	case StepTextDetection:
		return "text_detection"
	case StepItemExtraction:
		return "item_extraction"
	case StepAIFallback:
		return "ai_fallback"
	case StepCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Progress checkpoints per step, matching the observable stages of a scan.
var stepProgress = map[Step]float64{
	StepPreprocessing:  0.1,
	StepTextDetection:  0.3,
	StepItemExtraction: 0.6,
	StepAIFallback:     0.8,
	StepCompleted:      1.0,
}

// Tier names for run statistics and metrics.
const (
	TierCascade   = "cascade"
	TierProximity = "proximity"
	TierFuzzy     = "fuzzy"
)

// minCascadeItems is the escalation threshold: a cascade run that produces
// fewer items than this hands off to the fallback tiers.
const minCascadeItems = 2

// RunStats describes one completed pipeline run.
type RunStats struct {
	LinesProcessed int
	ItemsExtracted int
	Tier           string
	Elapsed        time.Duration
}

// Pipeline sequences classifier, cascade, and the fallback tiers over one
// receipt's text. A pipeline is single-use state for one run; callers wanting
// concurrency create one per run and serialize runs per bill themselves.
type Pipeline struct {
	cascade Cascade

	step     Step
	progress float64
	items    []models.Item
	stats    RunStats
}

// NewPipeline returns a pipeline ready to run.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Step returns the pipeline's current stage.
func (p *Pipeline) Step() Step { return p.step }

// Progress returns the current progress checkpoint in [0, 1].
func (p *Pipeline) Progress() float64 { return p.progress }

// Stats returns statistics for the last completed run. Valid only once the
// pipeline has reached StepCompleted.
func (p *Pipeline) Stats() RunStats { return p.stats }

// Items returns the extracted items. Results are readable only from
// StepCompleted; any earlier stage returns nil.
func (p *Pipeline) Items() []models.Item {
	if p.step != StepCompleted {
		return nil
	}
	return p.items
}

// Run extracts items from recognized receipt text. The cascade runs over
// every classified line; if it produces fewer than minCascadeItems, the
// fallback tiers take over (proximity first, then fuzzy if proximity comes up
// empty). A run that exhausts every tier completes with an empty item list —
// that is the caller's signal, not an error.
//
// Cancellation discards all partial results: the pipeline never exposes a
// half-built item list.
func (p *Pipeline) Run(ctx context.Context, text string) ([]models.Item, error) {
	start := time.Now()
	p.reset()

	// The OCR collaborator owns the first two stages; from here they are
	// pass-through checkpoints.
	p.advance(StepPreprocessing)
	p.advance(StepTextDetection)
	if err := ctx.Err(); err != nil {
		p.reset()
		return nil, err
	}

	p.advance(StepItemExtraction)
	lines := strings.Split(text, "\n")
	classified := usableLines(lines)
	items := p.cascade.Extract(classified)
	tier := TierCascade

	if len(items) < minCascadeItems {
		if err := ctx.Err(); err != nil {
			p.reset()
			return nil, err
		}
		p.advance(StepAIFallback)
		items = extractProximity(lines)
		tier = TierProximity
		if len(items) == 0 {
			items = extractFuzzy(lines)
			tier = TierFuzzy
		}
	}

	if err := ctx.Err(); err != nil {
		p.reset()
		return nil, err
	}

	p.items = items
	p.stats = RunStats{
		LinesProcessed: len(lines),
		ItemsExtracted: len(items),
		Tier:           tier,
		Elapsed:        time.Since(start),
	}
	p.advance(StepCompleted)

	extractionRuns.WithLabelValues(tier).Inc()
	itemsExtracted.Add(float64(len(items)))
	slog.Debug("extraction run completed",
		"tier", tier,
		"lines", p.stats.LinesProcessed,
		"items", p.stats.ItemsExtracted,
		"duration_ms", p.stats.Elapsed.Milliseconds(),
	)
	return items, nil
}

func (p *Pipeline) advance(step Step) {
	p.step = step
	p.progress = stepProgress[step]
}

func (p *Pipeline) reset() {
	p.step = StepPreprocessing
	p.progress = 0
	p.items = nil
	p.stats = RunStats{}
}
