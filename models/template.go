package models

// MessageData feeds the notification templates.
type MessageData struct {
	CandidateName string
	Role          string
	Dates         []string
	RoundType     string
	Interviewers  []string
	ResponseLink  string
	JoiningDate   string
	CompanyName   string
}
