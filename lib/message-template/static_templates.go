package messagetemplate

const inviteTemplate = `<html><body>
<p>Dear {{.CandidateName}},</p>
<p>We are pleased to invite you to an interview for the <b>{{.Role}}</b> position at {{.CompanyName}}.</p>
<p>Proposed dates:</p>
<ul>{{range .Dates}}<li>{{.}}</li>{{end}}</ul>
<p>Please confirm a suitable date or decline via the link below:</p>
<p><a href="{{.ResponseLink}}">{{.ResponseLink}}</a></p>
<p>Best regards,<br>{{.CompanyName}} recruitment team</p>
</body></html>`

const verifyTemplate = `<html><body>
<p>Dear {{.CandidateName}},</p>
<p>Ahead of your <b>{{.Role}}</b> interview, please verify your joining and compensation details
via the link below:</p>
<p><a href="{{.ResponseLink}}">{{.ResponseLink}}</a></p>
<p>Best regards,<br>{{.CompanyName}} recruitment team</p>
</body></html>`

const congratsTemplate = `<html><body>
<p>Dear {{.CandidateName}},</p>
<p>Congratulations! You have been selected for the <b>{{.Role}}</b> position at {{.CompanyName}}.</p>
{{if .JoiningDate}}<p>Your joining date is <b>{{.JoiningDate}}</b>.</p>{{end}}
<p>Our team will contact you shortly with the offer details.</p>
<p>Best regards,<br>{{.CompanyName}} recruitment team</p>
</body></html>`

const managerInviteTemplate = `<html><body>
<p>Hello,</p>
<p>You are assigned as an interviewer for candidate <b>{{.CandidateName}}</b> ({{.Role}}, {{.RoundType}} round).</p>
<p>Proposed dates:</p>
<ul>{{range .Dates}}<li>{{.}}</li>{{end}}</ul>
<p>Best regards,<br>{{.CompanyName}} recruitment team</p>
</body></html>`
