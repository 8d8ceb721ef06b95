package database

import (
	"sauvetage/internal/domain"
	"sauvetage/internal/models"
)

var DefaultSettings = map[string]string{
	"contact_email":                   "contact@sauvetage-secourisme.fr",
	"contact_telephone":               "04 00 00 00 00",
	"adresse":                         "Base nautique, 34200 Sète",
	"facebook_url":                    "",
	"instagram_url":                   "",
	domain.SettingNotificationsEmail:  "true",
	domain.SettingInscriptionsOuverte: "true",
}

var DefaultTemplates = []models.EmailTemplate{
	{
		Nom:   "Confirmation d'inscription",
		Sujet: "Votre inscription à {{formation}}",
		Corps: "<p>Bonjour {{prenom}},</p><p>Nous avons bien reçu votre inscription à la formation <strong>{{formation}}</strong> du {{date}}.</p><p>Elle sera examinée sous peu ; vous recevrez un email dès qu'elle sera validée.</p><p>Sportivement,<br>L'équipe</p>",
		Type:  domain.TemplateConfirmationInscription,
		Actif: true,
	},
	{
		Nom:   "Notification admin",
		Sujet: "Nouvelle inscription : {{formation}}",
		Corps: "<p>{{prenom}} {{nom}} ({{email}}) vient de s'inscrire à <strong>{{formation}}</strong> du {{date}}.</p>",
		Type:  domain.TemplateNotificationAdmin,
		Actif: true,
	},
	{
		Nom:   "Inscription acceptée",
		Sujet: "Inscription confirmée : {{formation}}",
		Corps: "<p>Bonjour {{prenom}},</p><p>Votre inscription à la formation <strong>{{formation}}</strong> du {{date}} est confirmée.</p><p>Rendez-vous sur place 15 minutes avant le début.</p>",
		Type:  domain.TemplateInscriptionAcceptee,
		Actif: true,
	},
	{
		Nom:   "Inscription refusée",
		Sujet: "Inscription non retenue : {{formation}}",
		Corps: "<p>Bonjour {{prenom}},</p><p>Nous sommes au regret de ne pas pouvoir retenir votre inscription à <strong>{{formation}}</strong>.</p><p>N'hésitez pas à vous inscrire à une prochaine session.</p>",
		Type:  domain.TemplateInscriptionRefusee,
		Actif: true,
	},
	{
		Nom:   "Annulation d'inscription",
		Sujet: "Annulation : {{formation}}",
		Corps: "<p>Bonjour {{prenom}},</p><p>Votre inscription à la formation <strong>{{formation}}</strong> du {{date}} a été annulée.</p>",
		Type:  domain.TemplateAnnulationInscription,
		Actif: true,
	},
	{
		Nom:   "Message de contact",
		Sujet: "[Site] {{sujet}}",
		Corps: "<p>Message de {{prenom}} {{nom}} ({{email}}) :</p><blockquote>{{message}}</blockquote>",
		Type:  domain.TemplateContact,
		Actif: true,
	},
}
