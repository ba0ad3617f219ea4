package command

// EventKind tags a recorded handler notification
type EventKind uint8

const (
	EventSuccess EventKind = iota
	EventFailed
	EventRank
	EventResponse
)

func (k EventKind) String() string {
	switch k {
	case EventSuccess:
		return "success"
	case EventFailed:
		return "failed"
	case EventRank:
		return "rank"
	case EventResponse:
		return "response"
	default:
		return "unknown"
	}
}

// Event is one handler notification
type Event struct {
	Kind     EventKind
	Rank     Rank
	Response any
}

// Recorder is a Handler that keeps every notification in order
// Used for replays, determinism checks and tests
type Recorder struct {
	HandlerName string
	Events      []Event
}

// NewRecorder creates an empty recorder
func NewRecorder(name string) *Recorder {
	return &Recorder{HandlerName: name}
}

func (r *Recorder) Name() string { return r.HandlerName }

func (r *Recorder) OnCommandSuccess() {
	r.Events = append(r.Events, Event{Kind: EventSuccess})
}

func (r *Recorder) OnCommandFailed() {
	r.Events = append(r.Events, Event{Kind: EventFailed})
}

func (r *Recorder) OnCommandRankResult(rank Rank) {
	r.Events = append(r.Events, Event{Kind: EventRank, Rank: rank})
}

func (r *Recorder) OnCommandResponse(response any) {
	r.Events = append(r.Events, Event{Kind: EventResponse, Response: response})
}

// Count returns how many events of kind were recorded
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Outcome returns the terminal result if one was recorded
func (r *Recorder) Outcome() (Result, bool) {
	for _, e := range r.Events {
		switch e.Kind {
		case EventSuccess:
			return Success, true
		case EventFailed:
			return Failure, true
		}
	}
	return Failure, false
}

// LastRank returns the recorded rank, RankNone if absent
func (r *Recorder) LastRank() Rank {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Kind == EventRank {
			return r.Events[i].Rank
		}
	}
	return RankNone
}

// Responses returns recorded payloads in order
func (r *Recorder) Responses() []any {
	var out []any
	for _, e := range r.Events {
		if e.Kind == EventResponse {
			out = append(out, e.Response)
		}
	}
	return out
}

// Reset drops all events
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
