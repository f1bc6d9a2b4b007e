package initializers

import (
	"context"
	"recruitment-backend/config"
	"recruitment-backend/fiberlog"
	candidatehandler "recruitment-backend/lib/candidate"
	emailsynchandler "recruitment-backend/lib/email-sync"
	graphclient "recruitment-backend/lib/email-sync/client"
	emailsyncworker "recruitment-backend/lib/email-sync/worker"
	xlsexport "recruitment-backend/lib/export/xls"
	gpthandler "recruitment-backend/lib/gpt"
	interviewhandler "recruitment-backend/lib/interview"
	mprhandler "recruitment-backend/lib/mpr"
	"recruitment-backend/lib/notify"
	orghandler "recruitment-backend/lib/org"
	"recruitment-backend/lib/rbac"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	graphclient.NewProvider(config.Conf.Graph.Host, config.Conf.Graph.LoginHost)
	notify.NewHandler()
	xlsexport.NewHandler()
	gpthandler.NewHandler()
	rbac.NewHandler()
	candidatehandler.NewHandler()
	interviewhandler.NewHandler()
	mprhandler.NewHandler()
	orghandler.NewHandler()
	emailsynchandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	if *config.Conf.Graph.SyncWorker {
		// Mailbox sync job, the handler decides which accounts are due.
		emailsyncworker.StartWorker(ctx)
	}
}
