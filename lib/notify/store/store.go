package notifystore

import (
	"gorm.io/gorm"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Append(rec dbmodels.Notification) (id string, err error)
	ListByRecipient(recipient string) (list []dbmodels.Notification, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Append(rec dbmodels.Notification) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByRecipient(recipient string) (list []dbmodels.Notification, err error) {
	err = i.db.
		Model(&dbmodels.Notification{}).
		Where("recipient = ?", recipient).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
