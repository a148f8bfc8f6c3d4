package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

func TestMentorMatchLifecycle(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	member := mustCreateUser(t, db, "member", models.RoleMember)
	mentor := mustCreateUser(t, db, "mentor", models.RoleMentor)

	newApp := func(user *models.User) *fiber.App {
		app := fiber.New()
		app.Use(asUser(user))
		app.Post("/mentor-matches/request", s.RequestMentor)
		app.Put("/mentor-matches/:id/respond", s.RespondToMatch)
		app.Get("/mentor-matches/requests", s.GetPendingMatchRequests)
		return app
	}

	request := func(app *fiber.App, mentorID uint) *http.Response {
		body, _ := json.Marshal(fiber.Map{"mentor_id": mentorID})
		req := httptest.NewRequest(http.MethodPost, "/mentor-matches/request", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		return resp
	}

	t.Run("member requests mentor", func(t *testing.T) {
		resp := request(newApp(member), mentor.UserID)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}

		var got models.MentorMatch
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Status != models.MatchStatusPending {
			t.Fatalf("expected pending, got %s", got.Status)
		}
	})

	t.Run("duplicate pair rejected", func(t *testing.T) {
		resp := request(newApp(member), mentor.UserID)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("self match rejected", func(t *testing.T) {
		resp := request(newApp(member), member.UserID)
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})

	t.Run("mentor sees pending request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mentor-matches/requests", nil)
		resp, err := newApp(mentor).Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer func() { _ = resp.Body.Close() }()

		var got []models.MentorMatch
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 pending request, got %d", len(got))
		}
	})

	respond := func(app *fiber.App, status string) *http.Response {
		body := []byte(`{"status":"` + status + `"}`)
		req := httptest.NewRequest(http.MethodPut, "/mentor-matches/1/respond", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		return resp
	}

	t.Run("member cannot respond", func(t *testing.T) {
		resp := respond(newApp(member), "accepted")
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", resp.StatusCode)
		}
	})

	t.Run("mentor declines", func(t *testing.T) {
		resp := respond(newApp(mentor), "declined")
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var got models.MentorMatch
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Status != models.MatchStatusDeclined {
			t.Fatalf("expected declined, got %s", got.Status)
		}
	})

	t.Run("second respond rejected", func(t *testing.T) {
		resp := respond(newApp(mentor), "accepted")
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}

		var got struct {
			Code string `json:"code"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Code != "CONFLICT" {
			t.Fatalf("expected CONFLICT code, got %q", got.Code)
		}

		var stored models.MentorMatch
		if err := db.First(&stored, 1).Error; err != nil {
			t.Fatalf("reload match: %v", err)
		}
		if stored.Status != models.MatchStatusDeclined {
			t.Fatalf("expected status to stay declined, got %s", stored.Status)
		}
	})
}

func TestRequestMentorTargetMustBeMentor(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	member := mustCreateUser(t, db, "member", models.RoleMember)
	peer := mustCreateUser(t, db, "peer", models.RoleMember)

	app := fiber.New()
	app.Use(asUser(member))
	app.Post("/mentor-matches/request", s.RequestMentor)

	body, _ := json.Marshal(fiber.Map{"mentor_id": peer.UserID})
	req := httptest.NewRequest(http.MethodPost, "/mentor-matches/request", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
