package database

import (
	"testing"

	"sauvetage/internal/domain"
	"sauvetage/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestSeedAdminCreatesBootstrapAccount(t *testing.T) {
	db := setupDB(t)
	t.Setenv("ADMIN_EMAIL", "boot@assoc.test")
	t.Setenv("ADMIN_PASSWORD", "premier-mot-de-passe")

	require.NoError(t, SeedAdmin(db))

	var a models.Admin
	require.NoError(t, db.First(&a).Error)
	assert.Equal(t, "boot@assoc.test", a.Email)
	assert.Equal(t, domain.RoleSuperAdmin, a.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("premier-mot-de-passe")))

	// idempotent once an account exists
	require.NoError(t, SeedAdmin(db))
	var count int64
	db.Model(&models.Admin{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSeedAdminNoopWithoutCredentials(t *testing.T) {
	db := setupDB(t)
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	require.NoError(t, SeedAdmin(db))

	var count int64
	db.Model(&models.Admin{}).Count(&count)
	assert.Zero(t, count)
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, SeedDefaults(db))
	require.NoError(t, SeedDefaults(db))

	var templates, settings int64
	db.Model(&models.EmailTemplate{}).Count(&templates)
	db.Model(&models.Setting{}).Count(&settings)
	assert.Equal(t, int64(len(DefaultTemplates)), templates)
	assert.Equal(t, int64(len(DefaultSettings)), settings)
}
