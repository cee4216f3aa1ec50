package models

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	BcryptCost = bcrypt.MinCost
	t.Cleanup(func() { BcryptCost = bcrypt.DefaultCost })

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "models.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(All()...))
	return db
}

func TestValidateRating(t *testing.T) {
	tests := []struct {
		rating  float64
		wantErr bool
	}{
		{1, false},
		{3, false},
		{5, false},
		{0, true},
		{6, true},
		{-1, true},
		{5.1, true},
		{2.5, true},
	}

	for _, tt := range tests {
		err := ValidateRating(tt.rating)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrRatingOutOfRange, "rating %v", tt.rating)
			assert.Equal(t, "Rating must be between 1 and 5.", err.Error())
		} else {
			assert.NoError(t, err, "rating %v", tt.rating)
		}
	}
}

func TestUserRole_Valid(t *testing.T) {
	assert.True(t, RoleHost.Valid())
	assert.True(t, RoleListener.Valid())
	assert.False(t, UserRole("Admin").Valid())
	assert.False(t, UserRole("").Valid())
}

func TestUser_PasswordHashedOnSave(t *testing.T) {
	db := setupTestDB(t)

	user := &User{Email: "host@example.com", Password: "12345", Role: RoleHost}
	require.NoError(t, db.Create(user).Error)

	assert.NotEqual(t, "12345", user.Password)
	_, err := bcrypt.Cost([]byte(user.Password))
	require.NoError(t, err)

	ok, err := user.CheckPassword("12345")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = user.CheckPassword("wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	// Re-saving a loaded user keeps the stored hash
	var loaded User
	require.NoError(t, db.First(&loaded, user.ID).Error)
	hash := loaded.Password
	loaded.Verified = true
	require.NoError(t, db.Save(&loaded).Error)
	assert.Equal(t, hash, loaded.Password)

	// Setting a new plaintext password re-hashes it
	loaded.Password = "new-secret"
	require.NoError(t, db.Save(&loaded).Error)
	ok, err = loaded.CheckPassword("new-secret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUser_HashShapedPasswordIsHashed(t *testing.T) {
	db := setupTestDB(t)

	lookalike, err := bcrypt.GenerateFromPassword([]byte("other"), bcrypt.MinCost)
	require.NoError(t, err)
	plain := string(lookalike)

	user := &User{Email: "odd@example.com", Password: plain, Role: RoleListener}
	require.NoError(t, db.Create(user).Error)
	assert.NotEqual(t, plain, user.Password)

	var loaded User
	require.NoError(t, db.First(&loaded, user.ID).Error)
	ok, err := loaded.CheckPassword(plain)
	require.NoError(t, err)
	assert.True(t, ok, "a password shaped like a hash must still be usable to log in")
}

func TestUser_CheckPassword_CorruptHash(t *testing.T) {
	user := &User{Password: "not-a-hash"}

	ok, err := user.CheckPassword("anything")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestUser_EmailUnique(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&User{Email: "dup@example.com", Password: "a", Role: RoleListener}).Error)
	err := db.Create(&User{Email: "dup@example.com", Password: "b", Role: RoleListener}).Error
	assert.Error(t, err)
}

func TestUser_JSONHidesPassword(t *testing.T) {
	user := User{Email: "a@b.c", Password: "secret-hash", Role: RoleListener}
	user.ID = 4

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret-hash")
	assert.Contains(t, string(data), `"id":4`)
	assert.Contains(t, string(data), `"role":"Listener"`)
}

func TestPodcast_EpisodesRelation(t *testing.T) {
	db := setupTestDB(t)

	podcast := &Podcast{Title: "abc", Category: "sf", Episodes: []Episode{
		{Title: "epi1", Category: "fs"},
		{Title: "epi2", Category: "fs"},
	}}
	require.NoError(t, db.Create(podcast).Error)

	var loaded Podcast
	require.NoError(t, db.Preload("Episodes").First(&loaded, podcast.ID).Error)
	require.Len(t, loaded.Episodes, 2)
	for _, e := range loaded.Episodes {
		assert.Equal(t, podcast.ID, e.PodcastID)
	}
}
