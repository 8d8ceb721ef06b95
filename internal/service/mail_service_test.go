package service

import (
	"testing"

	"sauvetage/internal/domain"
	"sauvetage/internal/models"
	"sauvetage/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRender(t *testing.T) {
	out := Render("Bonjour {{prenom}} {{nom}}, rendez-vous le {{date}}.", map[string]string{
		"prenom": "Léa", "nom": "Martin", "date": "12/09/2026",
	})
	assert.Equal(t, "Bonjour Léa Martin, rendez-vous le 12/09/2026.", out)
	assert.NotContains(t, out, "{{")
}

func TestRenderLeavesUnknownTokens(t *testing.T) {
	out := Render("Bonjour {{prenom}}, code {{inconnu}}", map[string]string{"prenom": "Léa"})
	assert.Equal(t, "Bonjour Léa, code {{inconnu}}", out)
}

type recordingSender struct {
	to, subject, body string
	calls             int
}

func (r *recordingSender) Send(to, subject, htmlBody string) error {
	r.to, r.subject, r.body = to, subject, htmlBody
	r.calls++
	return nil
}

func setupTemplates(t *testing.T) *repository.EmailTemplateRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.EmailTemplate{}))
	require.NoError(t, db.Create(&models.EmailTemplate{
		Nom:   "Confirmation",
		Sujet: "Inscription à {{formation}}",
		Corps: "<p>Bonjour {{prenom}},</p>",
		Type:  domain.TemplateConfirmationInscription,
		Actif: true,
	}).Error)
	require.NoError(t, db.Create(&models.EmailTemplate{
		Nom:   "Ancienne annulation",
		Sujet: "x",
		Corps: "x",
		Type:  domain.TemplateAnnulationInscription,
		Actif: false,
	}).Error)
	return repository.NewEmailTemplateRepository(db)
}

func TestSendTemplateRendersAndSends(t *testing.T) {
	sender := &recordingSender{}
	svc := NewMailService(setupTemplates(t), sender, zap.NewNop())

	err := svc.SendTemplate(domain.TemplateConfirmationInscription, "lea@example.fr", map[string]string{
		"prenom": "Léa", "formation": "PSC1 septembre",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, "lea@example.fr", sender.to)
	assert.Equal(t, "Inscription à PSC1 septembre", sender.subject)
	assert.Equal(t, "<p>Bonjour Léa,</p>", sender.body)
}

func TestSendTemplateInactiveType(t *testing.T) {
	sender := &recordingSender{}
	svc := NewMailService(setupTemplates(t), sender, zap.NewNop())

	err := svc.SendTemplate(domain.TemplateAnnulationInscription, "lea@example.fr", nil)
	require.Error(t, err)
	assert.Zero(t, sender.calls)
}
