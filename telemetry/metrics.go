package telemetry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hoyle1974/timewindow/misc"
)

// This package is how we report what the batch evaluator did. By default metrics are
// no-ops, but a caller can provide an implementation if they want them to go somewhere.

type Metrics interface {
	SetCount(key string, value int64)
	SetGauge(key string, value float64)
}

type NOPMetrics struct {
}

func (n NOPMetrics) SetCount(key string, value int64) {
}
func (n NOPMetrics) SetGauge(key string, value float64) {
}

// Counters keeps the last value reported for every key in memory.
type Counters struct {
	_      misc.NoCopy
	lock   sync.Mutex
	counts map[string]int64
	gauges map[string]float64
}

func NewCounters() *Counters {
	return &Counters{
		counts: map[string]int64{},
		gauges: map[string]float64{},
	}
}

func (c *Counters) SetCount(key string, value int64) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.counts[key] = value
}

func (c *Counters) SetGauge(key string, value float64) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.gauges[key] = value
}

func (c *Counters) Count(key string) int64 {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.counts[key]
}

func (c *Counters) Gauge(key string) float64 {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.gauges[key]
}

// String lists counts then gauges, each sorted by key.
func (c *Counters) String() string {
	c.lock.Lock()
	defer c.lock.Unlock()

	var parts []string
	for k, v := range misc.Range(c.counts) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v))
	}
	for k, v := range misc.Range(c.gauges) {
		parts = append(parts, fmt.Sprintf("%s=%g", k, v))
	}
	return strings.Join(parts, " ")
}
