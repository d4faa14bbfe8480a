package models

// PipelineStatus is the closed set of stages a candidate moves through.
type PipelineStatus string

const (
	PipelineStatusPending       PipelineStatus = "pending"
	PipelineStatusShortlisted   PipelineStatus = "shortlisted"
	PipelineStatusRound1        PipelineStatus = "round1"
	PipelineStatusRound2        PipelineStatus = "round2"
	PipelineStatusRound3        PipelineStatus = "round3"
	PipelineStatusSelected      PipelineStatus = "selected"
	PipelineStatusNotInterested PipelineStatus = "not_interested"

	PipelineStatusPendingRejected     PipelineStatus = "pendingrejected"
	PipelineStatusShortlistedRejected PipelineStatus = "shortlistedrejected"
	PipelineStatusRound1Rejected      PipelineStatus = "round1rejected"
	PipelineStatusRound2Rejected      PipelineStatus = "round2rejected"
	PipelineStatusRound3Rejected      PipelineStatus = "round3rejected"
)

var allPipelineStatuses = map[PipelineStatus]struct{}{
	PipelineStatusPending:             {},
	PipelineStatusShortlisted:         {},
	PipelineStatusRound1:              {},
	PipelineStatusRound2:              {},
	PipelineStatusRound3:              {},
	PipelineStatusSelected:            {},
	PipelineStatusNotInterested:       {},
	PipelineStatusPendingRejected:     {},
	PipelineStatusShortlistedRejected: {},
	PipelineStatusRound1Rejected:      {},
	PipelineStatusRound2Rejected:      {},
	PipelineStatusRound3Rejected:      {},
}

func (s PipelineStatus) Valid() bool {
	_, ok := allPipelineStatuses[s]
	return ok
}

// IsRejectable reports whether the Reject event may be applied in this stage.
func (s PipelineStatus) IsRejectable() bool {
	switch s {
	case PipelineStatusPending, PipelineStatusShortlisted,
		PipelineStatusRound1, PipelineStatusRound2, PipelineStatusRound3:
		return true
	}
	return false
}

// Rejected returns the terminal failure variant of a rejectable stage.
func (s PipelineStatus) Rejected() PipelineStatus {
	return s + "rejected"
}

func (s PipelineStatus) Terminal() bool {
	return s.Valid() && !s.IsRejectable()
}

// PipelineEvent names a requested transition.
type PipelineEvent string

const (
	EventSendInvite          PipelineEvent = "send_invite"
	EventVerifyDetails       PipelineEvent = "verify_details"
	EventAdvance             PipelineEvent = "advance"
	EventReject              PipelineEvent = "reject"
	EventSendCongratulations PipelineEvent = "send_congratulations"
	EventMarkNotInterested   PipelineEvent = "mark_not_interested"
)

func (e PipelineEvent) Valid() bool {
	switch e {
	case EventSendInvite, EventVerifyDetails, EventAdvance, EventReject,
		EventSendCongratulations, EventMarkNotInterested:
		return true
	}
	return false
}

// EffectKind identifies an outbound side effect. The set of kinds already
// performed is persisted on the candidate and acts as the idempotence guard.
type EffectKind string

const (
	EffectInviteEmail   EffectKind = "invite_email"
	EffectVerifyEmail   EffectKind = "verify_email"
	EffectCongratsEmail EffectKind = "congrats_email"
	EffectManagerInvite EffectKind = "manager_invite"
)

// Interview round names set by the pipeline on round advance.
const (
	RoundTypeTechnical1 = "Technical 1"
	RoundTypeTechnical2 = "Technical 2"
	RoundTypeHR         = "HR"
)

type CandidateSource string

const (
	CandidateSourceManual       CandidateSource = "manual"
	CandidateSourceResumeUpload CandidateSource = "resume_upload"
	CandidateSourceRegistration CandidateSource = "registration"
)

// ResponseReply is the candidate's own answer to an interview invite.
type ResponseReply string

const (
	ResponseReplyAccepted ResponseReply = "accepted"
	ResponseReplyDeclined ResponseReply = "declined"
)

// ApplicationStatus is the read-only projection of the pipeline status onto
// job application rows. Only the pipeline writes it.
type ApplicationStatus string

const (
	ApplicationStatusApplied      ApplicationStatus = "applied"
	ApplicationStatusShortlisted  ApplicationStatus = "shortlisted"
	ApplicationStatusInterviewing ApplicationStatus = "interviewing"
	ApplicationStatusSelected     ApplicationStatus = "selected"
	ApplicationStatusRejected     ApplicationStatus = "rejected"
	ApplicationStatusDeclined     ApplicationStatus = "declined"
)

func ApplicationStatusFor(s PipelineStatus) ApplicationStatus {
	switch s {
	case PipelineStatusPending:
		return ApplicationStatusApplied
	case PipelineStatusShortlisted:
		return ApplicationStatusShortlisted
	case PipelineStatusRound1, PipelineStatusRound2, PipelineStatusRound3:
		return ApplicationStatusInterviewing
	case PipelineStatusSelected:
		return ApplicationStatusSelected
	case PipelineStatusNotInterested:
		return ApplicationStatusDeclined
	}
	return ApplicationStatusRejected
}
