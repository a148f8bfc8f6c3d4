package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

func TestMemberDashboardStats(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	member := mustCreateUser(t, db, "member", models.RoleMember)
	mentor := mustCreateUser(t, db, "mentor", models.RoleMentor)
	admin := mustCreateUser(t, db, "admin", models.RoleAdmin)

	v1 := mustCreateVenture(t, db, member.UserID, "CareLink")
	v2 := mustCreateVenture(t, db, member.UserID, "MediTrack")

	for _, app := range []*models.Application{
		{VentureID: v1.VentureID, Status: models.ApplicationStatusSubmitted},
		{VentureID: v2.VentureID, Status: models.ApplicationStatusApproved},
	} {
		if err := db.Create(app).Error; err != nil {
			t.Fatalf("create application: %v", err)
		}
	}
	match := &models.MentorMatch{MentorID: mentor.UserID, MemberID: member.UserID, Status: models.MatchStatusAccepted}
	if err := db.Create(match).Error; err != nil {
		t.Fatalf("create match: %v", err)
	}
	program := &models.Program{Title: "Spring Cohort", Description: "d", IsActive: 1, CreatedBy: admin.UserID}
	if err := db.Create(program).Error; err != nil {
		t.Fatalf("create program: %v", err)
	}

	app := fiber.New()
	app.Use(asUser(member))
	app.Get("/dashboard/member", s.MemberDashboard)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/member", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("member dashboard: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Ventures          []models.Venture `json:"ventures"`
		AvailablePrograms []models.Program `json:"available_programs"`
		Stats             map[string]int   `json:"stats"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}

	if len(payload.Ventures) != 2 {
		t.Errorf("expected 2 ventures, got %d", len(payload.Ventures))
	}
	if len(payload.AvailablePrograms) != 1 {
		t.Errorf("expected 1 active program, got %d", len(payload.AvailablePrograms))
	}
	want := map[string]int{
		"total_ventures":        2,
		"total_applications":    2,
		"pending_applications":  1,
		"approved_applications": 1,
		"mentor_connections":    1,
	}
	for key, expected := range want {
		if payload.Stats[key] != expected {
			t.Errorf("stats[%s] = %d, want %d", key, payload.Stats[key], expected)
		}
	}
}

func TestMemberDashboardMembersOnly(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	mentor := mustCreateUser(t, db, "mentor", models.RoleMentor)

	app := fiber.New()
	app.Use(asUser(mentor))
	app.Get("/dashboard/member", s.MemberDashboard)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/member", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("member dashboard: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for mentor, got %d", resp.StatusCode)
	}
}

func TestMentorDashboardStats(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	mentor := mustCreateUser(t, db, "mentor", models.RoleMentor)
	m1 := mustCreateUser(t, db, "alice", models.RoleMember)
	m2 := mustCreateUser(t, db, "bob", models.RoleMember)

	for _, match := range []*models.MentorMatch{
		{MentorID: mentor.UserID, MemberID: m1.UserID, Status: models.MatchStatusAccepted},
		{MentorID: mentor.UserID, MemberID: m2.UserID, Status: models.MatchStatusPending},
	} {
		if err := db.Create(match).Error; err != nil {
			t.Fatalf("create match: %v", err)
		}
	}

	category := &models.ResourceCategory{CategoryName: "Funding"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	resource := &models.Resource{CategoryID: category.CategoryID, UploadedByID: mentor.UserID, Title: "Guide"}
	if err := db.Create(resource).Error; err != nil {
		t.Fatalf("create resource: %v", err)
	}

	app := fiber.New()
	app.Use(asUser(mentor))
	app.Get("/dashboard/mentor", s.MentorDashboard)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/mentor", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("mentor dashboard: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		PendingRequests []models.MentorMatch `json:"pending_requests"`
		Stats           map[string]int       `json:"stats"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if len(payload.PendingRequests) != 1 {
		t.Errorf("expected 1 pending request, got %d", len(payload.PendingRequests))
	}
	if payload.Stats["total_mentees"] != 1 {
		t.Errorf("stats[total_mentees] = %d, want 1", payload.Stats["total_mentees"])
	}
	if payload.Stats["resources_shared"] != 1 {
		t.Errorf("stats[resources_shared] = %d, want 1", payload.Stats["resources_shared"])
	}
}

func TestGetMenteeVentures(t *testing.T) {
	t.Parallel()

	s, db := newTestServer(t)
	mentor := mustCreateUser(t, db, "mentor", models.RoleMentor)
	member := mustCreateUser(t, db, "member", models.RoleMember)
	otherMentor := mustCreateUser(t, db, "peer", models.RoleMentor)
	mustCreateVenture(t, db, member.UserID, "CareLink")

	app := fiber.New()
	app.Use(asUser(mentor))
	app.Get("/dashboard/mentees/:id/ventures", s.GetMenteeVentures)

	t.Run("lists mentee ventures", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/dashboard/mentees/%d/ventures", member.UserID), nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("get mentee ventures: %v", err)
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		var ventures []models.Venture
		if err := json.NewDecoder(resp.Body).Decode(&ventures); err != nil {
			t.Fatalf("decode ventures: %v", err)
		}
		if len(ventures) != 1 {
			t.Errorf("expected 1 venture, got %d", len(ventures))
		}
	})

	t.Run("target must be a member", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/dashboard/mentees/%d/ventures", otherMentor.UserID), nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("get mentee ventures: %v", err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404 for non-member target, got %d", resp.StatusCode)
		}
	})
}
