package poststore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talentflow-backend/models/db"
)

var ErrNotFound = errors.New("recruitment post not found")

type Provider interface {
	Create(rec dbmodels.RecruitmentPost) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.RecruitmentPost, err error)
	List(filter dbmodels.PostFilter, page, limit int) (list []dbmodels.RecruitmentPost, rowCount int64, err error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RecruitmentPost) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.RecruitmentPost{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.RecruitmentPost, error) {
	rec := dbmodels.RecruitmentPost{}
	err := i.db.
		Model(&dbmodels.RecruitmentPost{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter dbmodels.PostFilter, page, limit int) (list []dbmodels.RecruitmentPost, rowCount int64, err error) {
	list = []dbmodels.RecruitmentPost{}
	tx := i.db.
		Model(&dbmodels.RecruitmentPost{})
	if filter.Department != "" {
		tx.Where("department = ?", filter.Department)
	}
	if filter.OnlyOpen {
		tx.Where("closed = false")
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(title) like ? or LOWER(description) like ?", searchValue, searchValue)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.RecruitmentPost{}).
		Error
}
