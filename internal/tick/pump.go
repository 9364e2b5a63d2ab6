package tick

import "time"

// Pump fires Stepped sources from externally measured time, such as one
// Advance per rendered frame. Each source keeps its own remainder so
// sources with different intervals stay independent.
type Pump struct {
	sources []*Stepped
	acc     []time.Duration
}

// NewPump creates a pump over the given sources. Fire order within one
// Advance follows the argument order.
func NewPump(sources ...*Stepped) *Pump {
	return &Pump{
		sources: sources,
		acc:     make([]time.Duration, len(sources)),
	}
}

// Advance adds elapsed time to every active source and fires each one once
// per whole interval accumulated, interleaving sources tick by tick.
// Inactive sources drop their remainder so a restart begins a full interval
// later. Returns the total number of fires.
func (p *Pump) Advance(elapsed time.Duration) int {
	for i, s := range p.sources {
		if s.Active() {
			p.acc[i] += elapsed
		} else {
			p.acc[i] = 0
		}
	}

	fired := 0
	for {
		progressed := false
		for i, s := range p.sources {
			if s.interval <= 0 || p.acc[i] < s.interval {
				continue
			}
			p.acc[i] -= s.interval
			if s.Fire() {
				fired++
				progressed = true
			} else {
				p.acc[i] = 0
			}
		}
		if !progressed {
			return fired
		}
	}
}
