package graphql

import (
	"context"
	"net/http"
	"testing"
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogql/internal/apperrors"
	"blogql/internal/middleware"
	"blogql/internal/models"
	"blogql/internal/repository"
	"blogql/internal/service"
)

func newTestSchema(t *testing.T, users *MockUserService, posts *MockPostService, userRepo *MockUserRepository) *graphqlgo.Schema {
	t.Helper()

	resolver := NewResolver(
		&service.Service{User: users, Post: posts},
		&repository.Repository{User: userRepo},
	)

	schema, err := graphqlgo.ParseSchema(Schema, resolver)
	require.NoError(t, err)
	return schema
}

func authedContext(userID string) context.Context {
	return middleware.WithIdentity(context.Background(), service.Identity{
		UserID: userID,
		Email:  "test@example.com",
	})
}

func TestSchemaParses(t *testing.T) {
	newTestSchema(t, new(MockUserService), new(MockPostService), new(MockUserRepository))
}

func TestLoginQuery(t *testing.T) {
	users := new(MockUserService)
	users.On("Login", mock.Anything, "test@example.com", "password123").
		Return("token-abc", "user-123", nil)

	schema := newTestSchema(t, users, new(MockPostService), new(MockUserRepository))

	query := `
		query {
			login(email: "test@example.com", password: "password123") {
				token
				userId
			}
		}
	`

	resp := schema.Exec(context.Background(), query, "", nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"login":{"token":"token-abc","userId":"user-123"}}`, string(resp.Data))
}

func TestLoginQuery_WrongPassword(t *testing.T) {
	users := new(MockUserService)
	users.On("Login", mock.Anything, "test@example.com", "wrong").
		Return("", "", apperrors.Unauthenticated("Password is incorrect"))

	schema := newTestSchema(t, users, new(MockPostService), new(MockUserRepository))

	resp := schema.Exec(context.Background(), `query { login(email: "test@example.com", password: "wrong") { token userId } }`, "", nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Password is incorrect", resp.Errors[0].Message)
	assert.Equal(t, http.StatusUnauthorized, resp.Errors[0].Extensions["status"])
}

func TestCreateUserMutation_InvalidInput(t *testing.T) {
	users := new(MockUserService)
	users.On("CreateUser", mock.Anything, "bad", "abc", "Anna").
		Return(nil, apperrors.InvalidInput("Invalid input", []apperrors.FieldError{
			{Field: "email", Message: "Email is not valid"},
			{Field: "password", Message: "Password is too short"},
		}))

	schema := newTestSchema(t, users, new(MockPostService), new(MockUserRepository))

	query := `
		mutation {
			createUser(userInput: {email: "bad", password: "abc", name: "Anna"}) {
				id
				email
			}
		}
	`

	resp := schema.Exec(context.Background(), query, "", nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Invalid input", resp.Errors[0].Message)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Errors[0].Extensions["status"])

	data, ok := resp.Errors[0].Extensions["data"].([]apperrors.FieldError)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestGetPostsQuery(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	posts := new(MockPostService)
	posts.On("GetPosts", mock.Anything, mock.Anything, 1).
		Return([]models.Post{
			{
				PostID:    "post-5",
				Title:     "Fifth post",
				Content:   "Content five",
				ImageURL:  "images/e.png",
				CreatorID: "user-123",
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			},
		}, 5, nil)

	schema := newTestSchema(t, new(MockUserService), posts, new(MockUserRepository))

	query := `
		query {
			getPosts(page: 1) {
				posts {
					id
					title
					createdAt
				}
				totalItems
			}
		}
	`

	resp := schema.Exec(authedContext("user-123"), query, "", nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{
		"getPosts": {
			"posts": [{"id": "post-5", "title": "Fifth post", "createdAt": "2024-06-01T12:00:00Z"}],
			"totalItems": 5
		}
	}`, string(resp.Data))
}

func TestGetPostsQuery_DefaultsPage(t *testing.T) {
	posts := new(MockPostService)
	posts.On("GetPosts", mock.Anything, mock.Anything, 1).
		Return([]models.Post{}, 0, nil)

	schema := newTestSchema(t, new(MockUserService), posts, new(MockUserRepository))

	resp := schema.Exec(authedContext("user-123"), `query { getPosts { totalItems } }`, "", nil)
	require.Empty(t, resp.Errors)
	posts.AssertCalled(t, "GetPosts", mock.Anything, mock.Anything, 1)
}

func TestPostQuery_WithCreator(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	creator := &models.User{UserID: "user-123", Email: "test@example.com", Name: "Anna", Status: "I am new!"}

	posts := new(MockPostService)
	posts.On("GetPost", mock.Anything, mock.Anything, "post-1").
		Return(&models.Post{
			PostID:    "post-1",
			Title:     "A fine title",
			Content:   "Some long content",
			ImageURL:  "images/a.png",
			CreatorID: "user-123",
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
			Creator:   creator,
		}, nil)

	schema := newTestSchema(t, new(MockUserService), posts, new(MockUserRepository))

	query := `
		query {
			post(id: "post-1") {
				id
				title
				creator {
					id
					name
				}
			}
		}
	`

	resp := schema.Exec(authedContext("user-123"), query, "", nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{
		"post": {
			"id": "post-1",
			"title": "A fine title",
			"creator": {"id": "user-123", "name": "Anna"}
		}
	}`, string(resp.Data))
}

func TestDeletePostMutation(t *testing.T) {
	posts := new(MockPostService)
	posts.On("DeletePost", mock.Anything, mock.Anything, "post-1").Return(true, nil)

	schema := newTestSchema(t, new(MockUserService), posts, new(MockUserRepository))

	resp := schema.Exec(authedContext("user-123"), `mutation { deletePost(id: "post-1") }`, "", nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"deletePost":true}`, string(resp.Data))
}

func TestUpdatePostMutation_Forbidden(t *testing.T) {
	posts := new(MockPostService)
	posts.On("UpdatePost", mock.Anything, mock.Anything, "post-1", "New title here", "New content here", "undefined").
		Return(nil, apperrors.Forbidden("Not authorized"))

	schema := newTestSchema(t, new(MockUserService), posts, new(MockUserRepository))

	query := `
		mutation {
			updatePost(id: "post-1", postInput: {title: "New title here", content: "New content here", imageUrl: "undefined"}) {
				id
			}
		}
	`

	resp := schema.Exec(authedContext("user-456"), query, "", nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, http.StatusForbidden, resp.Errors[0].Extensions["status"])
}
