package analytics

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

// Visitor events ride a buffered queue so a slow sink can never hold up a
// page render. When the queue is full the event is dropped.

type Event struct {
	VisitorID string
	Actor     string
	Action    string
	Entity    string
	Metadata  any
}

type Sink func(Event) error

type Dispatcher struct {
	sink  Sink
	log   zerolog.Logger
	queue chan Event
}

func NewDispatcher(log zerolog.Logger, sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
	}
	if d.sink == nil {
		d.sink = d.logSink
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink(ev); err != nil {
			d.log.Warn().Err(err).Str("action", ev.Action).Msg("analytics sink error")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("analytics queue full, dropping event")
	}
}

func (d *Dispatcher) logSink(ev Event) error {
	var meta string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			meta = string(b)
		}
	}

	d.log.Info().
		Str("visitor_id", ev.VisitorID).
		Str("actor", ev.Actor).
		Str("action", ev.Action).
		Str("entity", ev.Entity).
		Str("metadata", meta).
		Msg("visitor event")
	return nil
}
