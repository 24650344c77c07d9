package services

import (
	"time"

	"gorm.io/gorm"
)

// Package-level service handles wired once at startup, in the style of the
// rest of the app's controllers reaching into services directly.
var (
	Saves     *SaveService
	Feedbacks *FeedbackService
	Digests   *DigestService
	Scheduler *DigestScheduler
	ML        *MLService
)

func Init(db *gorm.DB, quietPeriod time.Duration, send MailSender) {
	Digests = NewDigestService(db)
	Scheduler = NewDigestScheduler(quietPeriod, Digests, send)
	Saves = NewSaveService(db, Scheduler)
	Feedbacks = NewFeedbackService(db)
	ML = NewMLService()
}
