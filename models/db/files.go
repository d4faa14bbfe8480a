package dbmodels

type FileType string

const (
	ResumeFileType FileType = "resume"
	JDFileType     FileType = "jd"
)

type FileStorage struct {
	BaseModel
	CandidateID string   `gorm:"type:varchar(36);index"`
	PostID      string   `gorm:"type:varchar(36);index"`
	FileType    FileType `gorm:"type:varchar(20)"`
	FileName    string   `gorm:"type:varchar(255)"`
	ObjectName  string   `gorm:"type:varchar(512)"` // key in object storage
	ContentType string   `gorm:"type:varchar(100)"`
	Size        int64
}
