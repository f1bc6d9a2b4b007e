package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"recruitment" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec        int    `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"604800" env:"JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		// Sender address for recruitment notifications.
		NotifyFrom string `default:"" env:"SMTP_NOTIFY_FROM"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"recruitment-files" env:"S3_BUCKET_NAME"`
	}
	Graph struct {
		Host         string `default:"https://graph.microsoft.com/v1.0" env:"GRAPH_HOST"`
		LoginHost    string `default:"https://login.microsoftonline.com" env:"GRAPH_LOGIN_HOST"`
		PageSize     int    `default:"50" env:"GRAPH_PAGE_SIZE"`
		SyncWorker   *bool  `default:"true" env:"GRAPH_SYNC_WORKER"`
	}
	YandexGPT struct {
		IAMToken  string `default:"" env:"YAGPT_IAM_TOKEN"`
		CatalogID string `default:"" env:"YAGPT_CATALOG_ID"`
		JobPrompt string `default:"You are a recruiter. Write an attractive job posting based on the requisition details provided." env:"YAGPT_JOB_PROMPT"`
	}
	Admin struct {
		Email     string `default:"" env:"ADMIN_EMAIL"`
		FirstName string `default:"" env:"ADMIN_FIRST_NAME"`
		LastName  string `default:"" env:"ADMIN_LAST_NAME"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
