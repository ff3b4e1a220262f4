package game

// Repeater turns a held control into repeated intents: one on press, then one
// per frame every Rate seconds once the control has been held for Delay.
type Repeater struct {
	Intent Intent
	Delay  float64
	Rate   float64

	down bool
	held float64
}

// NewRepeater uses the usual auto-shift timings of 0.2s delay and 0.05s rate.
func NewRepeater(intent Intent) *Repeater {
	return &Repeater{Intent: intent, Delay: 0.2, Rate: 0.05}
}

// Update advances the repeater by dt seconds with the control's current state
// and queues the intent on session when it fires.
func (r *Repeater) Update(session *Session, dt float64, down bool) bool {
	fire := false
	switch {
	case down && !r.down:
		r.held = 0
		fire = true
	case down:
		r.held += dt
		if r.held > r.Delay {
			r.held -= r.Rate
			fire = true
		}
	default:
		r.held = 0
	}
	r.down = down

	if fire {
		session.Queue(r.Intent)
	}
	return fire
}
