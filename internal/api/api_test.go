package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"agriquest/internal/model"
	"agriquest/internal/repository"
	"agriquest/internal/service"
	"agriquest/pkg/auth"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repository.New(repository.Config{
		Path: filepath.Join(t.TempDir(), "store.json"),
	})
	require.NoError(t, err)
	require.NoError(t, repo.EnsureDefaultData())

	userService := service.NewUserService(repo)
	questService := service.NewQuestService(repo)
	submissionService := service.NewSubmissionService(repo, repo, repo)
	settingsService := service.NewSettingsService(repo)

	jwtAuth := auth.NewJWTAuth("test-secret", time.Hour)

	router := gin.New()
	a := router.Group("/api/v1")
	NewAuthRoutes(a, userService, jwtAuth)
	NewUserRoutes(a, userService, jwtAuth)
	NewQuestRoutes(a, questService, userService, settingsService, jwtAuth)
	NewSubmissionRoutes(a, submissionService, jwtAuth)
	NewSettingsRoutes(a, settingsService)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func demoLogin(t *testing.T, router *gin.Engine, role model.Role) SessionResponse {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/demo-login", "", DemoLoginRequest{Role: role})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

func TestAPI_DemoLogin(t *testing.T) {
	router := setupRouter(t)

	session := demoLogin(t, router, model.RoleFarmer)
	assert.Equal(t, model.RoleFarmer, session.User.Role)
	assert.Equal(t, "राज पटेल", session.User.Name)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/demo-login", "", DemoLoginRequest{Role: "wizard"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_MeRequiresToken(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	session := demoLogin(t, router, model.RoleFarmer)
	w = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", session.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPI_ListQuestsLocalized(t *testing.T) {
	router := setupRouter(t)
	session := demoLogin(t, router, model.RoleFarmer)

	w := doJSON(t, router, http.MethodGet, "/api/v1/quests/?status=active&lang=hi", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Quests []QuestView `json:"quests"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Quests, 2)
	assert.Equal(t, "जैविक खाद का प्रयोग करें", resp.Quests[0].LocalizedTitle)
}

func TestAPI_QuestCreationRoleGated(t *testing.T) {
	router := setupRouter(t)

	body := CreateQuestRequest{
		Title:      model.LocalizedText{EN: "Mulch the Orchard"},
		Points:     120,
		Difficulty: model.DifficultyEasy,
	}

	farmer := demoLogin(t, router, model.RoleFarmer)
	w := doJSON(t, router, http.MethodPost, "/api/v1/quests/", farmer.Token, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := demoLogin(t, router, model.RoleAdmin)
	w = doJSON(t, router, http.MethodPost, "/api/v1/quests/", admin.Token, body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAPI_SubmitAndReviewFlow(t *testing.T) {
	router := setupRouter(t)

	farmer := demoLogin(t, router, model.RoleFarmer)
	w := doJSON(t, router, http.MethodPost, "/api/v1/submissions/", farmer.Token, SubmitRequest{
		QuestID:     "quest-1",
		Photos:      []string{"photo://compost.jpg"},
		Location:    model.Coordinates{Lat: 10.85, Lng: 76.27},
		Description: "compost applied to the plot",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var sub model.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))

	// a second submission for the same quest is refused
	w = doJSON(t, router, http.MethodPost, "/api/v1/submissions/", farmer.Token, SubmitRequest{
		QuestID:     "quest-1",
		Photos:      []string{"photo://again.jpg"},
		Description: "retrying",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// farmers cannot reach the review endpoint
	w = doJSON(t, router, http.MethodPost, "/api/v1/submissions/"+sub.ID+"/review", farmer.Token, ReviewRequest{Approve: true})
	assert.Equal(t, http.StatusForbidden, w.Code)

	aeo := demoLogin(t, router, model.RoleAEO)
	w = doJSON(t, router, http.MethodPost, "/api/v1/submissions/"+sub.ID+"/review", aeo.Token, ReviewRequest{
		Approve:  true,
		Comments: "good work",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reviewed model.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviewed))
	assert.Equal(t, model.SubmissionStatusApproved, reviewed.Status)
	assert.Equal(t, 150, reviewed.PointsAwarded)

	// reviewing twice is a conflict
	w = doJSON(t, router, http.MethodPost, "/api/v1/submissions/"+sub.ID+"/review", aeo.Token, ReviewRequest{Approve: false})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAPI_LanguageSettings(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/settings/language", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"language":"en"}`, w.Body.String())

	w = doJSON(t, router, http.MethodPut, "/api/v1/settings/language", "", SetLanguageRequest{Language: model.LanguageMalayalam})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/settings/language", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"language":"ml"}`, w.Body.String())

	w = doJSON(t, router, http.MethodPut, "/api/v1/settings/language", "", SetLanguageRequest{Language: "fr"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
