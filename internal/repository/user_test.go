package repository

import (
	"context"
	"testing"

	"github.com/daksh1821/Ask-Away/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByEmailMissingIsNilNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_CreateDuplicateIsConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{
		Username: "original", Email: "taken@example.com", Password: "hashed",
	}))

	// Two concurrent signups can both pass an existence check; the unique
	// index resolves the race and the loser gets a conflict.
	err := repo.Create(ctx, &models.User{
		Username: "impostor", Email: "taken@example.com", Password: "hashed",
	})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)

	err = repo.Create(ctx, &models.User{
		Username: "original", Email: "other@example.com", Password: "hashed",
	})
	require.Error(t, err)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestUserRepository_UpdateProfileIsColumnScoped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "scoped")
	require.NoError(t, db.Model(user).Update("reputation", 3).Error)

	require.NoError(t, repo.UpdateProfile(ctx, user.ID, map[string]interface{}{
		"interests": "go, testing",
	}))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, "go, testing", reloaded.Interests)
	assert.Equal(t, "hashed", reloaded.Password)
	assert.Equal(t, 3, reloaded.Reputation)

	err := repo.UpdateProfile(ctx, 9999, map[string]interface{}{"interests": "x"})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUserRepository_IncrementCounters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "counter")

	require.NoError(t, repo.IncrementQuestionsCount(ctx, user.ID))
	require.NoError(t, repo.IncrementQuestionsCount(ctx, user.ID))
	require.NoError(t, repo.IncrementAnswersCount(ctx, user.ID))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, 2, reloaded.QuestionsCount)
	assert.Equal(t, 1, reloaded.AnswersCount)
}

func TestUserRepository_TopContributors(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	low := createTestUser(t, db, "low")
	high := createTestUser(t, db, "high")
	mid := createTestUser(t, db, "mid")
	require.NoError(t, db.Model(high).Updates(map[string]interface{}{
		"reputation": 10, "questions_count": 1,
	}).Error)
	require.NoError(t, db.Model(mid).Updates(map[string]interface{}{
		"reputation": 5, "questions_count": 7,
	}).Error)

	users, err := repo.TopContributors(ctx, MetricReputation, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, high.Username, users[0].Username)
	assert.Equal(t, mid.Username, users[1].Username)

	users, err = repo.TopContributors(ctx, MetricQuestions, 3)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, mid.Username, users[0].Username)
	assert.Equal(t, high.Username, users[1].Username)
	assert.Equal(t, low.Username, users[2].Username)
}
