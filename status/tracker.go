package status

import (
	"sync/atomic"

	"github.com/lixenwraith/action-command/command"
)

// Metric names recorded by Tracker
const (
	MetricSuccess   = "success"
	MetricFailed    = "failed"
	MetricRanks     = "ranks"
	MetricResponses = "responses"
	MetricLastRank  = "last_rank"
	MetricBestRank  = "best_rank"
	MetricLastValue = "last_value"
	MetricPeakValue = "peak_value"
)

// Tracker is a Handler that counts notifications for one command into a
// Registry and forwards them to the wrapped handler
type Tracker struct {
	inner   command.Handler
	command string

	success   *atomic.Int64
	failed    *atomic.Int64
	ranks     *atomic.Int64
	responses *atomic.Int64
	bestRank  *atomic.Int64
	lastRank  *AtomicString
	lastValue *AtomicFloat
	peakValue *AtomicFloat
}

// NewTracker wraps inner; nil inner drops notifications after counting
func NewTracker(reg *Registry, commandName string, inner command.Handler) *Tracker {
	if inner == nil {
		inner = command.NopHandler{}
	}
	return &Tracker{
		inner:     inner,
		command:   commandName,
		success:   reg.Ints.Get(Key(commandName, MetricSuccess)),
		failed:    reg.Ints.Get(Key(commandName, MetricFailed)),
		ranks:     reg.Ints.Get(Key(commandName, MetricRanks)),
		responses: reg.Ints.Get(Key(commandName, MetricResponses)),
		bestRank:  reg.Ints.Get(Key(commandName, MetricBestRank)),
		lastRank:  reg.Strings.Get(Key(commandName, MetricLastRank)),
		lastValue: reg.Floats.Get(Key(commandName, MetricLastValue)),
		peakValue: reg.Floats.Get(Key(commandName, MetricPeakValue)),
	}
}

func (t *Tracker) Name() string { return t.inner.Name() }

// Inner returns the wrapped handler
func (t *Tracker) Inner() command.Handler { return t.inner }

func (t *Tracker) OnCommandSuccess() {
	t.success.Add(1)
	t.inner.OnCommandSuccess()
}

func (t *Tracker) OnCommandFailed() {
	t.failed.Add(1)
	t.inner.OnCommandFailed()
}

func (t *Tracker) OnCommandRankResult(rank command.Rank) {
	t.ranks.Add(1)
	t.lastRank.Store(rank.String())
	storeMaxInt(t.bestRank, int64(rank))
	t.inner.OnCommandRankResult(rank)
}

// OnCommandResponse keeps numeric payloads as the last and peak value
func (t *Tracker) OnCommandResponse(response any) {
	t.responses.Add(1)
	if v, ok := numeric(response); ok {
		t.lastValue.Set(v)
		t.peakValue.StoreMax(v)
	}
	t.inner.OnCommandResponse(response)
}

func numeric(response any) (float64, bool) {
	switch v := response.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
