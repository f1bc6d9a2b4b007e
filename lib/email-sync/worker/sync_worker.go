package emailsyncworker

import (
	"context"
	"time"

	emailsynchandler "recruitment-backend/lib/email-sync"
	baseworker "recruitment-backend/lib/utils/base-worker"
)

// The worker wakes up every minute and lets the handler decide which
// accounts are due for a sync based on their own intervals.
const (
	firstRunDelay = 30 * time.Second
	runInterval   = time.Minute
)

type impl struct {
	*baseworker.BaseImpl
}

func StartWorker(ctx context.Context) {
	worker := impl{
		BaseImpl: baseworker.NewInstance("email_sync", firstRunDelay, runInterval),
	}
	go worker.Run(ctx, worker.job)
}

func (i impl) job(ctx context.Context) {
	emailsynchandler.Instance.SyncAll(ctx)
}
