package recovery

import (
	"github.com/strandsearch/strand/metrics"
)

const subsystem = "recovery"

var (
	startedCount = metrics.NewCounter(
		"started_total",
		subsystem,
		"total recovery sessions started",
		[]string{}).WithLabelValues()

	doneCount = metrics.NewCounter(
		"done_total",
		subsystem,
		"total recovery sessions completed successfully",
		[]string{}).WithLabelValues()

	failedCount = metrics.NewCounter(
		"failed_total",
		subsystem,
		"total recovery sessions that failed",
		[]string{}).WithLabelValues()

	canceledCount = metrics.NewCounter(
		"canceled_total",
		subsystem,
		"total recovery sessions canceled",
		[]string{}).WithLabelValues()

	committedFiles = metrics.NewCounter(
		"committed_files_total",
		subsystem,
		"total temporary files committed to their real names",
		[]string{}).WithLabelValues()

	inFlight = metrics.NewGauge(
		"in_flight",
		subsystem,
		"recovery sessions holding resources",
		[]string{}).WithLabelValues()
)
