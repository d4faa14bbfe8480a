package dbmodels

type AiLogKind string

const (
	AiLogKindResumeParse AiLogKind = "resume_parse"
	AiLogKindScore       AiLogKind = "score"
)

// AiLog keeps the raw request/response of every external LLM call.
type AiLog struct {
	BaseModel
	Kind     AiLogKind `gorm:"type:varchar(30)"`
	Request  string
	Response string
	Error    string
}
