package chathub

import "sync"

// MatchQueue holds per-topic FIFO queues of connections waiting to be
// paired. A single mutex guards every topic; check and match on the same
// topic must not observe different queue states, so callers that pair
// (the gateway event loop) perform no other queue mutation in between.
type MatchQueue struct {
	mu     sync.Mutex
	queues map[string][]Client
}

// NewMatchQueue creates an empty queue set.
func NewMatchQueue() *MatchQueue {
	return &MatchQueue{queues: make(map[string][]Client)}
}

// AddToQueue appends the connection to the topic's queue. No-op if the
// connection is already queued for that topic.
func (q *MatchQueue) AddToQueue(topicID string, c Client) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, waiting := range q.queues[topicID] {
		if waiting.GetConnID() == c.GetConnID() {
			return
		}
	}
	q.queues[topicID] = append(q.queues[topicID], c)
}

// RemoveFromQueue removes the connection from the topic's queue. Used for
// explicit cancellation and for disconnect cleanup. No-op if absent.
func (q *MatchQueue) RemoveFromQueue(topicID string, c Client) {
	q.mu.Lock()
	defer q.mu.Unlock()
	waiting := q.queues[topicID]
	for i, entry := range waiting {
		if entry.GetConnID() == c.GetConnID() {
			q.queues[topicID] = append(waiting[:i], waiting[i+1:]...)
			return
		}
	}
}

// Check reports whether the topic's queue holds two connections belonging
// to distinct users.
func (q *MatchQueue) Check(topicID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, _, ok := pairable(q.queues[topicID])
	return ok
}

// Match pops the two front-most distinct-user entries from the topic's
// queue, earliest enqueued first. The requesting username is kept for
// quota context by the caller, not used for filtering. Returns ok=false
// when fewer than two eligible entries remain, which can happen when a
// disconnect races a positive Check; callers treat that as a no-op.
func (q *MatchQueue) Match(topicID, requestingUsername string) (currentUser, matchedUser Client, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	waiting := q.queues[topicID]
	i, j, ok := pairable(waiting)
	if !ok {
		return nil, nil, false
	}
	currentUser, matchedUser = waiting[i], waiting[j]
	// j > i always; remove the later entry first so i stays valid.
	waiting = append(waiting[:j], waiting[j+1:]...)
	waiting = append(waiting[:i], waiting[i+1:]...)
	q.queues[topicID] = waiting
	return currentUser, matchedUser, true
}

// pairable finds the indices of the two front-most entries with distinct
// usernames.
func pairable(waiting []Client) (int, int, bool) {
	if len(waiting) < 2 {
		return 0, 0, false
	}
	first := waiting[0]
	for j := 1; j < len(waiting); j++ {
		if waiting[j].GetUsername() != first.GetUsername() {
			return 0, j, true
		}
	}
	return 0, 0, false
}

// Len returns the number of entries queued under a topic.
func (q *MatchQueue) Len(topicID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queues[topicID])
}
