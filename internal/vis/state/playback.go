package state

import "time"

// Playback manages plan playback timing. Time is measured in moves: a
// value of 2.5 means two moves are done and the third is halfway
// through its slide.
type Playback struct {
	CurrentTime float64 // Current playback time in moves
	MaxTime     float64 // Total number of moves in the plan
	Speed       float64 // Playback speed in moves per second
	Playing     bool    // Whether playback is active
	lastUpdate  time.Time
}

// NewPlayback creates a playback over a plan of the given length.
func NewPlayback(moves int) *Playback {
	return &Playback{
		MaxTime:    float64(moves),
		Speed:      1.5,
		lastUpdate: time.Now(),
	}
}

// TogglePlay toggles playback on/off.
func (p *Playback) TogglePlay() {
	p.Playing = !p.Playing
	if p.Playing {
		p.lastUpdate = time.Now()
		// Restart from the beginning when at the end
		if p.CurrentTime >= p.MaxTime {
			p.CurrentTime = 0
		}
	}
}

// Pause stops playback.
func (p *Playback) Pause() {
	p.Playing = false
}

// Reset resets to the start position.
func (p *Playback) Reset() {
	p.CurrentTime = 0
	p.Playing = false
}

// Advance advances playback by the wall-clock time since the last
// update.
func (p *Playback) Advance() {
	if !p.Playing {
		return
	}

	now := time.Now()
	elapsed := now.Sub(p.lastUpdate).Seconds()
	p.lastUpdate = now

	p.CurrentTime += elapsed * p.Speed

	if p.CurrentTime >= p.MaxTime {
		p.CurrentTime = p.MaxTime
		p.Playing = false
	}
}

// SetTime sets the current playback time, clamped to the plan.
func (p *Playback) SetTime(t float64) {
	if t < 0 {
		t = 0
	}
	if t > p.MaxTime {
		t = p.MaxTime
	}
	p.CurrentTime = t
}

// StepForward pauses and snaps to the end of the current move.
func (p *Playback) StepForward() {
	p.Pause()
	next := float64(int(p.CurrentTime) + 1)
	p.SetTime(next)
}

// StepBack pauses and snaps to the end of the previous move.
func (p *Playback) StepBack() {
	p.Pause()
	cur := p.CurrentTime
	prev := float64(int(cur) - 1)
	if cur > float64(int(cur)) {
		// Mid-move: first snap back to the move's start.
		prev = float64(int(cur))
	}
	p.SetTime(prev)
}

// SetSpeed sets the playback speed in moves per second.
func (p *Playback) SetSpeed(speed float64) {
	if speed < 0.1 {
		speed = 0.1
	}
	if speed > 10 {
		speed = 10
	}
	p.Speed = speed
}

// Progress returns current progress as 0-1.
func (p *Playback) Progress() float64 {
	if p.MaxTime <= 0 {
		return 0
	}
	return p.CurrentTime / p.MaxTime
}
