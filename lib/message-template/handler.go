package messagetemplate

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
	"talentflow-backend/models"
)

const (
	inviteSubject   = "Interview invitation"
	verifySubject   = "Please verify your interview details"
	congratsSubject = "Congratulations on your selection"
	managerSubject  = "Interview assignment"
)

var templates = map[models.EffectKind]*template.Template{
	models.EffectInviteEmail:   template.Must(template.New(string(models.EffectInviteEmail)).Parse(inviteTemplate)),
	models.EffectVerifyEmail:   template.Must(template.New(string(models.EffectVerifyEmail)).Parse(verifyTemplate)),
	models.EffectCongratsEmail: template.Must(template.New(string(models.EffectCongratsEmail)).Parse(congratsTemplate)),
	models.EffectManagerInvite: template.Must(template.New(string(models.EffectManagerInvite)).Parse(managerInviteTemplate)),
}

var subjects = map[models.EffectKind]string{
	models.EffectInviteEmail:   inviteSubject,
	models.EffectVerifyEmail:   verifySubject,
	models.EffectCongratsEmail: congratsSubject,
	models.EffectManagerInvite: managerSubject,
}

// Build renders the subject and HTML body for the given message kind.
func Build(kind models.EffectKind, data models.MessageData) (subject, body string, err error) {
	tpl, ok := templates[kind]
	if !ok {
		return "", "", errors.Errorf("unknown message kind: %s", kind)
	}
	buf := new(bytes.Buffer)
	if err = tpl.Execute(buf, data); err != nil {
		return "", "", errors.Wrap(err, "message template render failed")
	}
	return subjects[kind], buf.String(), nil
}
