package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphblog/api/internal/database/models"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hashed",
		IsAdmin:  false,
	}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	byEmail, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "Alice", byEmail.Name)

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
}

func TestUserRepository_FindNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByID(42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, db, "dup@example.com")

	err := repo.Create(&models.User{
		Name:     "Clone",
		Email:    "dup@example.com",
		Password: "hashed",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepository_Update_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	createTestUser(t, db, "first@example.com")
	second := createTestUser(t, db, "second@example.com")

	second.Email = "first@example.com"
	assert.ErrorIs(t, repo.Update(second), ErrDuplicateEmail)
}

func TestUserRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, "bob@example.com")
	user.Name = "Bobby"
	user.Email = "bobby@example.com"
	require.NoError(t, repo.Update(user))

	updated, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bobby", updated.Name)
	assert.Equal(t, "bobby@example.com", updated.Email)
}

func TestUserRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, "gone@example.com")
	require.NoError(t, repo.Delete(user.ID))

	_, err := repo.FindByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_DeleteCascadesToPosts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, "author@example.com")
	post := &models.Post{Title: "t", Body: "b", Image: "i", AuthorID: user.ID}
	require.NoError(t, db.Create(post).Error)

	require.NoError(t, repo.Delete(user.ID))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Where("author_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}
