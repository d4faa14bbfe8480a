package notify

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talentflow-backend/config"
	"talentflow-backend/db"
	messagetemplate "talentflow-backend/lib/message-template"
	notifystore "talentflow-backend/lib/notify/store"
	"talentflow-backend/lib/smtp"
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

// Provider is the notification sink. Send returns only after the transport
// confirmed delivery; the dispatch is then appended to the notification log.
type Provider interface {
	Send(ctx context.Context, kind models.EffectKind, recipient, candidateID string, data models.MessageData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:  notifystore.NewInstance(db.DB),
		sender: config.Conf.Smtp.Sender,
	}
}

type impl struct {
	store  notifystore.Provider
	sender string
}

func (i impl) Send(ctx context.Context, kind models.EffectKind, recipient, candidateID string, data models.MessageData) error {
	subject, body, err := messagetemplate.Build(kind, data)
	if err != nil {
		return err
	}
	err = smtp.Instance.SendEMail(i.sender, recipient, subject, body)
	if err != nil {
		return errors.Wrapf(err, "dispatch of %s to %s failed", kind, recipient)
	}
	_, err = i.store.Append(dbmodels.Notification{
		Recipient:   recipient,
		Kind:        kind,
		Subject:     subject,
		Body:        body,
		CandidateID: candidateID,
	})
	if err != nil {
		// the message is already out, a log-append failure must not fail the send
		log.
			WithField("recipient", recipient).
			WithError(err).
			Error("notification log append failed")
	}
	return nil
}
