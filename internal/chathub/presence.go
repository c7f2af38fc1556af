package chathub

import "sync"

// Presence counts currently connected participants. It is a pure counter:
// broadcasting the value to connections is the gateway's job.
type Presence struct {
	mu    sync.Mutex
	users int
}

// NewPresence creates an empty presence tracker.
func NewPresence() *Presence {
	return &Presence{}
}

// AddUser increments the connected-user count.
func (p *Presence) AddUser() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.users++
}

// DeleteUser decrements the connected-user count, flooring at zero.
func (p *Presence) DeleteUser() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.users > 0 {
		p.users--
	}
}

// NumUsers returns the current count.
func (p *Presence) NumUsers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.users
}
