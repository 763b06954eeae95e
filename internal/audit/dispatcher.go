package audit

import "log"

const (
	ActionUserRegistered  = "user_registered"
	ActionLoginSucceeded  = "login_succeeded"
	ActionLoginFailed     = "login_failed"
	ActionUserLocked      = "user_locked"
	ActionCustomerCreated = "customer_created"
)

type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID string
	Metadata any
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
			ev.Actor,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enqueued
	default:
		// queue full, drop rather than block a request
		log.Println("audit queue full, dropping event")
	}
}
