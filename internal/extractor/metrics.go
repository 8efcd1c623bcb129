package extractor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	extractionRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "divvyup_extraction_runs_total",
		Help: "Completed extraction pipeline runs, labeled by the tier that produced the result.",
	}, []string{"tier"})

	itemsExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "divvyup_extracted_items_total",
		Help: "Total items recovered from receipt text across all runs.",
	})
)
