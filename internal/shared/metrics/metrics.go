package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	batchesTotal            atomic.Uint64
	recordsScoredTotal      atomic.Uint64
	extractionFailuresTotal atomic.Uint64
	sendAttemptsTotal       atomic.Uint64
	sendFailuresTotal       atomic.Uint64

	batchDuration = newHistogram([]float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000})
)

// IncBatch increments the processed-batch counter.
func IncBatch() {
	batchesTotal.Add(1)
}

// IncRecordScored increments the scored-record counter.
func IncRecordScored() {
	recordsScoredTotal.Add(1)
}

// IncExtractionFailure increments the extraction-failure counter.
func IncExtractionFailure() {
	extractionFailuresTotal.Add(1)
}

// IncSendAttempt increments the feedback-send attempt counter.
func IncSendAttempt() {
	sendAttemptsTotal.Add(1)
}

// IncSendFailure increments the feedback-send failure counter.
func IncSendFailure() {
	sendFailuresTotal.Add(1)
}

// ObserveBatchDurationMs records a batch pipeline duration in milliseconds.
func ObserveBatchDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	batchDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "screening_batches_total", "Total screening batches processed", batchesTotal.Load())
	writeCounter(&buf, "screening_records_scored_total", "Total resume records scored", recordsScoredTotal.Load())
	writeCounter(&buf, "screening_extraction_failures_total", "Total documents that failed text extraction", extractionFailuresTotal.Load())
	writeCounter(&buf, "feedback_send_attempts_total", "Total feedback email send attempts", sendAttemptsTotal.Load())
	writeCounter(&buf, "feedback_send_failures_total", "Total failed feedback email sends", sendFailuresTotal.Load())
	writeHistogram(&buf, "screening_batch_duration_ms", "Batch pipeline duration in milliseconds", batchDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds for duration bookkeeping.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
