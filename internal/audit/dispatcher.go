package audit

import "log"

type Event struct {
	BarbershopID string
	UserID       *string
	Action       string
	Entity       string
	EntityID     *string
	Metadata     any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.BarbershopID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch never blocks the request path; when the queue is full the event
// is dropped. A nil dispatcher discards everything, which lets callers run
// without auditing wired up.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
