package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"

	"github.com/braav-io/setup/base/log"
)

var (
	clientMu sync.RWMutex
	client   statsCli = &LogClient{}

	// DdPort is the dogstatsd port of the agent
	DdPort = 8125
)

const (
	// buffer 10 metrics before sending to statsd
	bufferMetrics = 10
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// Init points every Service at the datadog agent on host. An empty host keeps the log client.
// The returned func flushes buffered metrics and must run before the process exits.
func Init(host string) (flush func(), err error) {
	if host == "" {
		return func() {}, nil
	}
	addr := fmt.Sprintf("%s:%d", host, DdPort)
	log.Log().WithField("addr", addr).Debug("connecting to datadog agent")
	dd, err := statsd.New(addr, statsd.WithMaxMessagesPerPayload(bufferMetrics))
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("statsd.New failed")
		return func() {}, err
	}
	setClient(dd)
	return func() {
		if err := dd.Flush(); err != nil {
			log.Log().WithField("err", err).Warn("statsd flush failed")
		}
		_ = dd.Close()
		setClient(&LogClient{})
	}, nil
}

func setClient(c statsCli) {
	clientMu.Lock()
	defer clientMu.Unlock()
	client = c
}

func current() statsCli {
	clientMu.RLock()
	defer clientMu.RUnlock()
	return client
}

// DDMetrics forwards to the configured statsd client.
type DDMetrics struct {
	ddTags []string
}

// BumpAvg records a gauge for the given key.
func (dm *DDMetrics) BumpAvg(key string, val, sampleRate float64, tags ...string) {
	if err := current().Gauge(key, val, append(dm.ddTags, parseTag(tags)...), sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpAvg"}).Error("Bump fail")
	}
}

// BumpSum bumps the sum for the given key.
func (dm *DDMetrics) BumpSum(key string, val, sampleRate float64, tags ...string) {
	if err := current().Count(key, int64(val), append(dm.ddTags, parseTag(tags)...), sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpSum"}).Error("Bump fail")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (dm *DDMetrics) BumpHistogram(key string, val, sampleRate float64, tags ...string) {
	if err := current().Histogram(key, val, append(dm.ddTags, parseTag(tags)...), sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

// BumpTime starts a timer that is recorded when End is called:
//
//	defer s.BumpTime("my.function").End()
func (dm *DDMetrics) BumpTime(key string, sampleRate float64, tags ...string) Ender {
	return &ddTimeTracker{
		start:      time.Now(),
		key:        key,
		tags:       append(dm.ddTags, parseTag(tags)...),
		sampleRate: sampleRate,
	}
}

// parseTag turns k1, v1, k2, v2 into k1:v1, k2:v2
func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

type ddTimeTracker struct {
	start      time.Time
	key        string
	tags       []string
	sampleRate float64
}

func (dt *ddTimeTracker) End() {
	d := time.Since(dt.start)
	dur := float64(d) / float64(time.Millisecond)
	if err := current().TimeInMilliseconds(dt.key, dur, dt.tags, dt.sampleRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": dt.key, "val": dur, "func": "BumpTime"}).Error("Bump fail")
	}
}
