package service

import (
	"context"
	"strings"
	"testing"

	"github.com/daksh1821/Ask-Away/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionService_CreateBumpsAuthorCounter(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuestionService(env.questions, env.users)
	ctx := context.Background()

	author := env.createUser(t, "author")

	question, err := svc.Create(ctx, author.ID, "  A question  ", "Some content", "go, testing")
	require.NoError(t, err)
	assert.Equal(t, "A question", question.Title)
	assert.NotZero(t, question.ID)

	var reloaded models.User
	require.NoError(t, env.db.First(&reloaded, author.ID).Error)
	assert.Equal(t, 1, reloaded.QuestionsCount)
}

func TestQuestionService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuestionService(env.questions, env.users)
	ctx := context.Background()

	author := env.createUser(t, "author")

	tests := []struct {
		name    string
		title   string
		content string
	}{
		{"Empty Title", "", "content"},
		{"Whitespace Title", "   ", "content"},
		{"Empty Content", "title", ""},
		{"Title Too Long", strings.Repeat("x", 301), "content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, author.ID, tt.title, tt.content, "")
			require.Error(t, err)
			assert.Equal(t, models.CodeValidation, appErrCode(t, err))
		})
	}
}

func TestQuestionService_SearchEmptyQueryLists(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuestionService(env.questions, env.users)
	ctx := context.Background()

	author := env.createUser(t, "author")
	env.createQuestion(t, author.ID, "First")
	env.createQuestion(t, author.ID, "Second")

	questions, err := svc.Search(ctx, "   ", 10, 0)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestQuestionService_DeleteIsAuthorOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := NewQuestionService(env.questions, env.users)
	ctx := context.Background()

	author := env.createUser(t, "author")
	stranger := env.createUser(t, "stranger")
	question := env.createQuestion(t, author.ID, "Mine to delete")

	err := svc.Delete(ctx, question.ID, stranger.ID)
	require.Error(t, err)
	assert.Equal(t, models.CodeUnauthorized, appErrCode(t, err))

	require.NoError(t, svc.Delete(ctx, question.ID, author.ID))

	_, err = svc.Get(ctx, question.ID, 0)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, appErrCode(t, err))
}

func TestAnswerService_CreateBumpsCounterAndChecksQuestion(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAnswerService(env.answers, env.questions, env.users)
	ctx := context.Background()

	asker := env.createUser(t, "asker")
	author := env.createUser(t, "author")
	question := env.createQuestion(t, asker.ID, "Needs an answer")

	answer, err := svc.Create(ctx, author.ID, question.ID, "Here is how")
	require.NoError(t, err)
	assert.NotZero(t, answer.ID)

	var reloaded models.User
	require.NoError(t, env.db.First(&reloaded, author.ID).Error)
	assert.Equal(t, 1, reloaded.AnswersCount)

	_, err = svc.Create(ctx, author.ID, 8888, "Orphan answer")
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, appErrCode(t, err))

	_, err = svc.Create(ctx, author.ID, question.ID, "  ")
	require.Error(t, err)
	assert.Equal(t, models.CodeValidation, appErrCode(t, err))
}

func TestAnswerService_ListForQuestionOldestFirst(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAnswerService(env.answers, env.questions, env.users)
	ctx := context.Background()

	asker := env.createUser(t, "asker")
	author := env.createUser(t, "author")
	question := env.createQuestion(t, asker.ID, "Thread order")

	first, err := svc.Create(ctx, author.ID, question.ID, "first")
	require.NoError(t, err)
	second, err := svc.Create(ctx, author.ID, question.ID, "second")
	require.NoError(t, err)

	answers, err := svc.ListForQuestion(ctx, question.ID)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, first.ID, answers[0].ID)
	assert.Equal(t, second.ID, answers[1].ID)
}
