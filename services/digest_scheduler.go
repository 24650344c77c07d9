package services

import (
	"log"
	"sync"
	"time"
)

// DigestAssembler builds the digest for a user, or returns nil when there is
// nothing to send.
type DigestAssembler interface {
	BuildDigest(userID uint) (*DigestEmail, error)
}

// MailSender delivers an assembled digest. Fire and forget from the
// scheduler's point of view.
type MailSender func(to, subject, htmlBody string) error

// DigestScheduler coalesces a burst of saves by one user into a single digest
// email, sent one quiet period after the burst settles. Each save cancels the
// user's pending timer and arms a fresh one, so only the last save in a burst
// actually fires.
type DigestScheduler struct {
	quiet   time.Duration
	digests DigestAssembler
	send    MailSender

	mu    sync.Mutex
	slots map[uint]*digestSlot
}

// digestSlot is one user's pending-digest state. slot.mu serializes
// arm/cancel/fire for that user only; a slow send holds this user's slot but
// never the scheduler map, so other users are unaffected.
type digestSlot struct {
	mu    sync.Mutex
	seq   uint64
	timer *time.Timer
}

func NewDigestScheduler(quiet time.Duration, digests DigestAssembler, send MailSender) *DigestScheduler {
	return &DigestScheduler{
		quiet:   quiet,
		digests: digests,
		send:    send,
		slots:   make(map[uint]*digestSlot),
	}
}

func (s *DigestScheduler) slot(userID uint) *digestSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl := s.slots[userID]
	if sl == nil {
		sl = &digestSlot{}
		s.slots[userID] = sl
	}
	return sl
}

// NotifySaved records save activity for a user. If a digest timer is already
// armed it is cancelled and re-armed at now+quiet (debounce); otherwise a new
// one is armed.
func (s *DigestScheduler) NotifySaved(userID uint) {
	sl := s.slot(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()

	if sl.timer != nil {
		sl.timer.Stop()
	}
	sl.seq++
	seq := sl.seq
	sl.timer = time.AfterFunc(s.quiet, func() {
		s.fire(userID, sl, seq)
	})
}

func (s *DigestScheduler) fire(userID uint, sl *digestSlot, seq uint64) {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	// A Stop can lose the race with an already-running callback; the sequence
	// number tells a stale callback from the live one.
	if sl.seq != seq {
		return
	}
	sl.timer = nil

	digest, err := s.digests.BuildDigest(userID)
	if err != nil {
		// No retry here: the next save re-arms a fresh timer.
		log.Printf("digest: build failed for user %d: %v", userID, err)
		return
	}
	if digest == nil {
		return
	}
	if err := s.send(digest.To, digest.Subject, digest.HTML); err != nil {
		// The data is not lost, only this notification.
		log.Printf("digest: send failed for user %d: %v", userID, err)
	}
}

// CancelAll drops any pending digest for the user without sending. A fire
// already in flight runs to completion, but no further timer stays armed.
func (s *DigestScheduler) CancelAll(userID uint) {
	s.mu.Lock()
	sl := s.slots[userID]
	s.mu.Unlock()
	if sl == nil {
		return
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()
	if sl.timer != nil {
		sl.timer.Stop()
		sl.timer = nil
	}
	sl.seq++
}
