package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaan0029/jabref/internal/bib"
	"github.com/Kaan0029/jabref/internal/consistency"
)

func newTestMetrics(t *testing.T) (*CheckMetrics, *prometheus.Registry) {
	t.Helper()

	registry := prometheus.NewRegistry()
	m, err := NewCheckMetrics(registry)
	require.NoError(t, err)
	return m, registry
}

func sampleEntries() []*bib.Entry {
	return []*bib.Entry{
		bib.NewEntry(bib.TypeArticle, "A").WithField(bib.FieldTitle, "t"),
		bib.NewEntry(bib.TypeArticle, "B").WithField(bib.FieldTitle, "t").WithField(bib.FieldNote, "n"),
		bib.NewEntry(bib.TypeBook, "C").WithField(bib.FieldTitle, "t"),
		nil,
	}
}

func TestNewCheckMetricsRejectsDoubleRegistration(t *testing.T) {
	t.Parallel()

	_, registry := newTestMetrics(t)
	_, err := NewCheckMetrics(registry)
	require.Error(t, err)
}

func TestRecordCheck(t *testing.T) {
	t.Parallel()

	m, _ := newTestMetrics(t)
	entries := sampleEntries()
	result := consistency.Check(entries, nil)

	m.RecordCheck(entries, result, 2*time.Millisecond)
	m.RecordCheck(entries, result, 3*time.Millisecond)

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.checksTotal), 0)
	assert.InDelta(t, 6.0, testutil.ToFloat64(m.entriesCheckedTotal), 0, "nil entries are not counted")
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.entryTypes), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.inconsistentTypes), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.deviatingEntries.WithLabelValues("article")), 0)
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.uniqueFieldsTotal.WithLabelValues("note")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.deviatingEntries))
}

func TestRecordCheckResetsPerTypeGauge(t *testing.T) {
	t.Parallel()

	m, _ := newTestMetrics(t)
	entries := sampleEntries()
	m.RecordCheck(entries, consistency.Check(entries, nil), time.Millisecond)

	consistent := []*bib.Entry{bib.NewEntry(bib.TypeBook, "C").WithField(bib.FieldTitle, "t")}
	m.RecordCheck(consistent, consistency.Check(consistent, nil), time.Millisecond)

	assert.Equal(t, 0, testutil.CollectAndCount(m.deviatingEntries), "stale entry types are dropped")
	assert.InDelta(t, 0.0, testutil.ToFloat64(m.inconsistentTypes), 0)
}

func TestCheckDurationHistogram(t *testing.T) {
	t.Parallel()

	m, registry := newTestMetrics(t)
	m.RecordCheck(nil, consistency.Result{}, 5*time.Millisecond)

	families, err := registry.Gather()
	require.NoError(t, err)

	var histogram *dto.Histogram
	for _, mf := range families {
		if mf.GetName() == "bibcheck_check_duration_seconds" {
			require.Len(t, mf.GetMetric(), 1)
			histogram = mf.GetMetric()[0].GetHistogram()
		}
	}
	require.NotNil(t, histogram)
	assert.Equal(t, uint64(1), histogram.GetSampleCount())
	assert.InDelta(t, 0.005, histogram.GetSampleSum(), 1e-9)
}

func TestRecorderMethods(t *testing.T) {
	t.Parallel()

	m, _ := newTestMetrics(t)
	var r Recorder = m

	r.RecordOperation(OpLoad, StatusSuccess)
	r.RecordOperation(OpLoad, StatusError)
	r.RecordError(OpLoad, "file-parsing")
	r.RecordDuration(OpRender, 0.01)

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues(OpLoad, StatusSuccess)), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues(OpLoad, StatusError)), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.errorsTotal.WithLabelValues(OpLoad, "file-parsing")), 0)

	expected := `
# HELP bibcheck_errors_total Total number of errors by operation and error type
# TYPE bibcheck_errors_total counter
bibcheck_errors_total{error_type="file-parsing",operation="load"} 1
`
	require.NoError(t, testutil.CollectAndCompare(m.errorsTotal, strings.NewReader(expected)))
}

func TestNopRecorder(t *testing.T) {
	t.Parallel()

	var r Recorder = NopRecorder{}
	assert.NotPanics(t, func() {
		r.RecordOperation(OpCheck, StatusSuccess)
		r.RecordDuration(OpCheck, 1)
		r.RecordError(OpExport, "export")
	})
}
