package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"healthhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestSignup(t *testing.T) {
	s, db := newTestServer(t)

	app := fiber.New()
	app.Post("/signup", s.Signup)

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"first_name": "Amina",
				"last_name":  "Okafor",
				"email":      "amina@example.com",
				"password":   "Password123",
				"role":       "Member",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate email",
			body: map[string]string{
				"first_name": "Amina",
				"last_name":  "Okafor",
				"email":      "amina@example.com",
				"password":   "Password123",
				"role":       "Member",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Admin role rejected",
			body: map[string]string{
				"first_name": "Eve",
				"last_name":  "Admin",
				"email":      "eve@example.com",
				"password":   "Password123",
				"role":       "Admin",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Weak password",
			body: map[string]string{
				"first_name": "Bob",
				"last_name":  "Short",
				"email":      "bob@example.com",
				"password":   "short",
				"role":       "Mentor",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			assert.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}

	// New accounts start unapproved.
	var created models.User
	if err := db.Where("email = ?", "amina@example.com").First(&created).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	assert.False(t, created.IsApproved)
	assert.Equal(t, models.RoleMember, created.Role)
}

func TestLogin(t *testing.T) {
	s, db := newTestServer(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	user := &models.User{
		FirstName:    "Amina",
		LastName:     "Okafor",
		Email:        "amina@example.com",
		PasswordHash: string(hashed),
		Role:         models.RoleMember,
		IsApproved:   true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	app := fiber.New()
	app.Post("/login", s.Login)

	t.Run("Success", func(t *testing.T) {
		body := []byte(`{"email":"amina@example.com","password":"Password123"}`)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var payload struct {
			AccessToken string      `json:"access_token"`
			TokenType   string      `json:"token_type"`
			User        models.User `json:"user"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.NotEmpty(t, payload.AccessToken)
		assert.Equal(t, "bearer", payload.TokenType)
		assert.Equal(t, user.UserID, payload.User.UserID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		body := []byte(`{"email":"amina@example.com","password":"WrongPass1"}`)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Unknown email", func(t *testing.T) {
		body := []byte(`{"email":"nobody@example.com","password":"Password123"}`)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthRequired(t *testing.T) {
	s, db := newTestServer(t)

	approved := mustCreateUser(t, db, "approved", models.RoleMember)
	unapproved := &models.User{
		FirstName:    "Pending",
		LastName:     "User",
		Email:        "pending@example.com",
		PasswordHash: "x",
		Role:         models.RoleMember,
		IsApproved:   false,
	}
	if err := db.Create(unapproved).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	makeToken := func(userID uint, exp time.Time) string {
		claims := jwt.MapClaims{
			"sub": strconv.FormatUint(uint64(userID), 10),
			"exp": exp.Unix(),
			"iat": time.Now().Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(s.config.JWTSecret))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		return signed
	}

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
	}{
		{"Missing header", "", http.StatusUnauthorized},
		{"Malformed token", "Bearer not-a-token", http.StatusUnauthorized},
		{"Expired token", "Bearer " + makeToken(approved.UserID, time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"Deleted account", "Bearer " + makeToken(9999, time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"Unapproved account", "Bearer " + makeToken(unapproved.UserID, time.Now().Add(time.Hour)), http.StatusForbidden},
		{"Valid token", "Bearer " + makeToken(approved.UserID, time.Now().Add(time.Hour)), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			resp, err := app.Test(req)
			assert.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			// All token failures share one generic message.
			if tt.expectedStatus == http.StatusUnauthorized && tt.authorization != "" && tt.name != "Deleted account" {
				var body struct {
					Error string `json:"error"`
				}
				assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, "Invalid or expired token", body.Error)
			}
		})
	}
}
