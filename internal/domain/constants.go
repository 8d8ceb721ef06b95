package domain

const (
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// Gallery photo categories.
const (
	CategorieFormation        = "FORMATION"
	CategorieSauvetageSportif = "SAUVETAGE_SPORTIF"
	CategorieEvenement        = "EVENEMENT"
)

var ImageCategories = map[string]bool{
	CategorieFormation:        true,
	CategorieSauvetageSportif: true,
	CategorieEvenement:        true,
}

// Downloadable document categories.
const (
	DocFormationsPro = "FORMATIONS_PRO"
	DocStatuts       = "STATUTS"
	DocCGV           = "CGV"
	DocReglement     = "REGLEMENT"
	DocAutre         = "AUTRE"
)

var DocumentCategories = map[string]bool{
	DocFormationsPro: true,
	DocStatuts:       true,
	DocCGV:           true,
	DocReglement:     true,
	DocAutre:         true,
}

// Certification types taught by the association.
const (
	FormationPSC1      = "PSC1"
	FormationPSE1      = "PSE1"
	FormationPSE2      = "PSE2"
	FormationBNSSA     = "BNSSA"
	FormationSST       = "SST"
	FormationRecyclage = "RECYCLAGE"
)

var FormationTypes = map[string]bool{
	FormationPSC1:      true,
	FormationPSE1:      true,
	FormationPSE2:      true,
	FormationBNSSA:     true,
	FormationSST:       true,
	FormationRecyclage: true,
}

const (
	FormationPlanifiee = "PLANIFIEE"
	FormationEnCours   = "EN_COURS"
	FormationTerminee  = "TERMINEE"
	FormationAnnulee   = "ANNULEE"
)

var FormationStatuses = map[string]bool{
	FormationPlanifiee: true,
	FormationEnCours:   true,
	FormationTerminee:  true,
	FormationAnnulee:   true,
}

const (
	InscriptionEnAttente = "EN_ATTENTE"
	InscriptionAcceptee  = "ACCEPTEE"
	InscriptionRefusee   = "REFUSEE"
	InscriptionAnnulee   = "ANNULEE"
)

var InscriptionStatuses = map[string]bool{
	InscriptionEnAttente: true,
	InscriptionAcceptee:  true,
	InscriptionRefusee:   true,
	InscriptionAnnulee:   true,
}

// Email template types. One active template per type is used at send time.
const (
	TemplateConfirmationInscription = "CONFIRMATION_INSCRIPTION"
	TemplateNotificationAdmin       = "NOTIFICATION_ADMIN"
	TemplateInscriptionAcceptee     = "INSCRIPTION_ACCEPTEE"
	TemplateInscriptionRefusee      = "INSCRIPTION_REFUSEE"
	TemplateAnnulationInscription   = "ANNULATION_INSCRIPTION"
	TemplateContact                 = "CONTACT"
)

var TemplateTypes = map[string]bool{
	TemplateConfirmationInscription: true,
	TemplateNotificationAdmin:       true,
	TemplateInscriptionAcceptee:     true,
	TemplateInscriptionRefusee:      true,
	TemplateAnnulationInscription:   true,
	TemplateContact:                 true,
}

// Contact form kinds (simple contact vs. incident report).
const (
	MessageContact     = "CONTACT"
	MessageSignalement = "SIGNALEMENT"
)

// Setting keys the application consults; the remaining settings are site
// content served to the frontend as-is.
const (
	SettingNotificationsEmail  = "notifications_email"
	SettingInscriptionsOuverte = "inscriptions_ouverte"
)
