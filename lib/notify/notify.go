package notify

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"recruitment-backend/config"
	"recruitment-backend/lib/smtp"
	"recruitment-backend/models"
)

// Provider sends best-effort email notifications. Failures are logged and
// never returned, a failed notification must not fail the business operation.
type Provider interface {
	CandidateStatusChanged(email, name string, newStatus models.HiringStatus)
	MPRDecision(email, mprNumber string, status models.MPRStatus, reason string)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		from: config.Conf.Smtp.NotifyFrom,
	}
}

type impl struct {
	from string
}

func (i impl) CandidateStatusChanged(email, name string, newStatus models.HiringStatus) {
	logger := log.
		WithField("recipient", email).
		WithField("new_status", newStatus)
	if email == "" {
		return
	}
	subject := "Application status update"
	message := fmt.Sprintf("Hello %v,\n\nThe status of your application has changed to: %v.\n", name, newStatus.ToHuman())
	if err := smtp.Instance.SendEMail(i.from, email, message, subject); err != nil {
		logger.WithError(err).Error("candidate status notification failed")
	}
}

func (i impl) MPRDecision(email, mprNumber string, status models.MPRStatus, reason string) {
	logger := log.
		WithField("recipient", email).
		WithField("mpr_number", mprNumber).
		WithField("status", status)
	if email == "" {
		return
	}
	subject := fmt.Sprintf("Requisition %v: %v", mprNumber, status.ToHuman())
	message := fmt.Sprintf("Manpower request %v is now %v.", mprNumber, status.ToHuman())
	if reason != "" {
		message += fmt.Sprintf("\nReason: %v", reason)
	}
	if err := smtp.Instance.SendEMail(i.from, email, message, subject); err != nil {
		logger.WithError(err).Error("requisition decision notification failed")
	}
}
