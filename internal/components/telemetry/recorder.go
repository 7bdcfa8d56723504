package telemetry

import (
	"strings"
	"sync"
)

type Level int

const (
	LEVEL_DEBUG Level = iota
	LEVEL_COUNT
	LEVEL_WARNING
	LEVEL_BROKEN
)

type Report struct {
	Level  Level
	Id     string
	Params []any
	Count  int64
}

// Recorder implements API by keeping every report in memory, it is meant to
// be injected in tests to assert that failures are reported.
type Recorder struct {
	lock    sync.Mutex
	reports []Report
}

func (r *Recorder) add(report Report) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.reports = append(r.reports, report)
}

func (r *Recorder) ReportBroken(id string, params ...any) {
	r.add(Report{Level: LEVEL_BROKEN, Id: id, Params: params})
}

func (r *Recorder) ReportWarning(id string, params ...any) {
	r.add(Report{Level: LEVEL_WARNING, Id: id, Params: params})
}

func (r *Recorder) ReportDebug(msg string, params ...any) {
	r.add(Report{Level: LEVEL_DEBUG, Id: msg, Params: params})
}

func (r *Recorder) ReportCount(id string, count int64) {
	r.add(Report{Level: LEVEL_COUNT, Id: id, Count: count})
}

// Reports returns a copy of the recorded reports at or above the given level.
func (r *Recorder) Reports(min Level) []Report {
	r.lock.Lock()
	defer r.lock.Unlock()

	var out []Report
	for _, report := range r.reports {
		if report.Level >= min {
			out = append(out, report)
		}
	}
	return out
}

// Find returns the first report of the given level whose id ends with suffix.
func (r *Recorder) Find(level Level, suffix string) (Report, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, report := range r.reports {
		if report.Level == level && strings.HasSuffix(report.Id, suffix) {
			return report, true
		}
	}
	return Report{}, false
}
