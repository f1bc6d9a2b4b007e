package gpthandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruitment-backend/config"
	yagptclient "recruitment-backend/lib/gpt/yagpt-client"
	gptmodels "recruitment-backend/models/api/gpt"
)

type Provider interface {
	GenerateJobPosting(text string) (resp gptmodels.GenJobPostingResponse, err error)
}

type impl struct{}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

// GenerateJobPosting produces a job posting draft from the requisition
// summary text. The system prompt comes from configuration.
func (i impl) GenerateJobPosting(text string) (resp gptmodels.GenJobPostingResponse, err error) {
	if config.Conf.YandexGPT.IAMToken == "" || config.Conf.YandexGPT.CatalogID == "" {
		return resp, errors.New("text generation is not configured")
	}
	resp.Description, err = yagptclient.
		NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID).
		GenerateByPromptAndText(config.Conf.YandexGPT.JobPrompt, text)
	if err != nil {
		log.WithError(err).Error("job posting generation error")
		return resp, err
	}
	return resp, nil
}
