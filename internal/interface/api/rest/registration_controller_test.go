package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-account-api/internal/domain/user"
)

func validRegisterBody() map[string]any {
	return map[string]any{
		"firstName":   "John",
		"lastName":    "Doe",
		"dateOfBirth": "27.10.1995",
		"email":       "john.doe@example.com",
		"password":    "Secure123!",
	}
}

func TestRegisterUserHandler_Created(t *testing.T) {
	var gotReg domain.Registration
	fake := &FakeUserService{
		CreateUserFunc: func(ctx context.Context, reg domain.Registration) (*domain.Public, error) {
			gotReg = reg
			return somePublicUser(), nil
		},
	}
	r, _ := setupRouter(t, fake)

	rr := doReq(t, r, http.MethodPost, RouteRegister, validRegisterBody(), nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	// the secret must not appear anywhere in the response
	assert.NotContains(t, rr.Body.String(), "password")

	var resp struct {
		NewUser map[string]any `json:"newUser"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.NewUser)
	assert.NotEmpty(t, resp.NewUser["id"])
	assert.NotEmpty(t, resp.NewUser["createdAt"])
	assert.NotEmpty(t, resp.NewUser["updatedAt"])
	assert.Equal(t, "user", resp.NewUser["userRole"])

	assert.Equal(t, "Secure123!", gotReg.Password, "validated plaintext reaches the service for hashing")
	want := time.Date(1995, time.October, 27, 12, 0, 0, 0, time.UTC)
	assert.True(t, gotReg.DateOfBirth.Equal(want))
}

func TestRegisterUserHandler_ValidationFailure(t *testing.T) {
	fake := &FakeUserService{} // must never be reached
	r, _ := setupRouter(t, fake)

	body := validRegisterBody()
	body["firstName"] = "J0hn"
	body["password"] = "abc"

	rr := doReq(t, r, http.MethodPost, RouteRegister, body, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		Message string `json:"message"`
		Issues  []struct {
			Path    string `json:"path"`
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid payload", resp.Message)
	require.NotEmpty(t, resp.Issues)

	paths := map[string]bool{}
	for _, i := range resp.Issues {
		paths[i.Path] = true
	}
	assert.True(t, paths["firstName"])
	assert.True(t, paths["password"])
}

func TestRegisterUserHandler_MalformedJSON(t *testing.T) {
	fake := &FakeUserService{}
	r, _ := setupRouter(t, fake)

	rr := doReq(t, r, http.MethodPost, RouteRegister, `{"firstName": `, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegisterUserHandler_StorageFailureIsOpaque(t *testing.T) {
	fake := &FakeUserService{
		CreateUserFunc: func(ctx context.Context, reg domain.Registration) (*domain.Public, error) {
			return nil, errors.New("creating new user: duplicate key value violates unique constraint")
		},
	}
	r, _ := setupRouter(t, fake)

	rr := doReq(t, r, http.MethodPost, RouteRegister, validRegisterBody(), nil)
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp["message"])
	assert.NotContains(t, rr.Body.String(), "duplicate key", "storage detail stays in the logs")
}

func somePublicUser() *domain.Public {
	dob := time.Date(1995, time.October, 27, 12, 0, 0, 0, time.UTC)
	now := time.Now()
	return &domain.Public{
		ID:          uuid.New(),
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: &dob,
		Email:       "john.doe@example.com",
		Role:        domain.RoleUser,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
