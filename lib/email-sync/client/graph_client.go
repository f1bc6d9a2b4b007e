package graphclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	graphapimodels "recruitment-backend/models/api/graph"
)

type Provider interface {
	RequestToken(ctx context.Context, tenantID, clientID, clientSecret string) (*graphapimodels.TokenResponse, error)
	ListMessages(ctx context.Context, accessToken, mailbox string, pageSize int) ([]graphapimodels.Message, error)
	ListAttachments(ctx context.Context, accessToken, mailbox, messageID string) ([]graphapimodels.Attachment, error)
}

var Instance Provider

type impl struct {
	host      string
	loginHost string
}

func NewProvider(host, loginHost string) {
	Instance = &impl{
		host:      host,
		loginHost: loginHost,
	}
}

const (
	tokenPathTpl       string = "/%v/oauth2/v2.0/token"
	messagesPathTpl    string = "/users/%v/messages?$top=%v&$orderby=receivedDateTime desc"
	attachmentsPathTpl string = "/users/%v/messages/%v/attachments"
	graphScope         string = "https://graph.microsoft.com/.default"
)

func (i impl) RequestToken(ctx context.Context, tenantID, clientID, clientSecret string) (*graphapimodels.TokenResponse, error) {
	uri := i.loginHost + fmt.Sprintf(tokenPathTpl, tenantID)
	data := url.Values{}
	data.Set("client_id", clientID)
	data.Set("client_secret", clientSecret)
	data.Set("scope", graphScope)
	data.Set("grant_type", "client_credentials")

	r, _ := http.NewRequestWithContext(ctx, "POST", uri, strings.NewReader(data.Encode()))
	r.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	resp := graphapimodels.TokenResponse{}

	logger := log.
		WithField("external_request", uri).
		WithField("tenant_id", tenantID)

	err := i.sendRequest(logger, r, &resp, "")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListMessages walks the @odata.nextLink pagination until the server
// stops returning one.
func (i impl) ListMessages(ctx context.Context, accessToken, mailbox string, pageSize int) ([]graphapimodels.Message, error) {
	uri := i.host + fmt.Sprintf(messagesPathTpl, url.PathEscape(mailbox), pageSize)
	result := []graphapimodels.Message{}
	for uri != "" {
		r, _ := http.NewRequestWithContext(ctx, "GET", uri, nil)
		resp := graphapimodels.MessagesResponse{}

		logger := log.WithField("external_request", uri)
		if err := i.sendRequest(logger, r, &resp, accessToken); err != nil {
			return nil, err
		}
		result = append(result, resp.Value...)
		uri = resp.NextLink
	}
	return result, nil
}

func (i impl) ListAttachments(ctx context.Context, accessToken, mailbox, messageID string) ([]graphapimodels.Attachment, error) {
	uri := i.host + fmt.Sprintf(attachmentsPathTpl, url.PathEscape(mailbox), url.PathEscape(messageID))
	r, _ := http.NewRequestWithContext(ctx, "GET", uri, nil)
	resp := graphapimodels.AttachmentsResponse{}

	logger := log.WithField("external_request", uri)
	if err := i.sendRequest(logger, r, &resp, accessToken); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request, resp interface{}, accessToken string) error {
	if accessToken != "" {
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", accessToken))
	}
	client := &http.Client{}
	response, err := client.Do(r)
	if err != nil {
		logger.WithError(err).Error("graph request failed")
		return errors.Wrap(err, "graph request failed")
	}
	defer response.Body.Close()
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if resp != nil {
			responseBody, _ := io.ReadAll(response.Body)
			if err := json.Unmarshal(responseBody, resp); err != nil {
				return errors.Wrap(err, "response deserialization error")
			}
		}
		return nil
	}

	errorResp := graphapimodels.ErrorResponse{}
	responseBody, _ := io.ReadAll(response.Body)
	logger = logger.WithField("response_body", string(responseBody))
	if err := json.Unmarshal(responseBody, &errorResp); err != nil {
		logger.WithError(err).Error("response deserialization error")
	}
	logger.
		WithField("status_code", response.StatusCode).
		Error("graph request rejected")
	if errorResp.Error.Message != "" {
		return errors.Errorf("graph error (%v): %v", errorResp.Error.Code, errorResp.Error.Message)
	}
	return errors.Errorf("graph request failed with status %v", response.StatusCode)
}
