package messagetemplate

import (
	"testing"

	"github.com/stretchr/testify/require"
	"talentflow-backend/models"
)

func TestBuild(t *testing.T) {
	data := models.MessageData{
		CandidateName: "Jordan Miles",
		Role:          "Backend Engineer",
		Dates:         []string{"2026-09-01", "2026-09-02"},
		ResponseLink:  "http://localhost:8000/response/tok-1",
		CompanyName:   "TalentFlow",
	}

	t.Run("invite renders the response link and dates", func(t *testing.T) {
		subject, body, err := Build(models.EffectInviteEmail, data)
		require.Nil(t, err)
		require.Equal(t, inviteSubject, subject)
		require.Contains(t, body, data.ResponseLink)
		require.Contains(t, body, "2026-09-01")
		require.Contains(t, body, "2026-09-02")
		require.Contains(t, body, "Jordan Miles")
	})

	t.Run("congrats renders the joining date only when set", func(t *testing.T) {
		_, body, err := Build(models.EffectCongratsEmail, data)
		require.Nil(t, err)
		require.NotContains(t, body, "joining date")

		withDate := data
		withDate.JoiningDate = "2026-10-01"
		_, body, err = Build(models.EffectCongratsEmail, withDate)
		require.Nil(t, err)
		require.Contains(t, body, "2026-10-01")
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, _, err := Build(models.EffectKind("telegram"), data)
		require.Error(t, err)
	})
}
