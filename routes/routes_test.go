package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/ladder-system/handlers"
	"github.com/Dosada05/ladder-system/models"
	"github.com/Dosada05/ladder-system/realtime"
	"github.com/Dosada05/ladder-system/services"
)

const testSecret = "routes-secret"

type stubPlayers struct {
	services.PlayerService
	created int
}

func (s *stubPlayers) ListPlayers(ctx context.Context, filter services.PlayerFilter) ([]*models.Player, error) {
	return []*models.Player{}, nil
}

func (s *stubPlayers) CreatePlayer(ctx context.Context, input services.CreatePlayerInput) (*models.Player, error) {
	s.created++
	return &models.Player{ID: 1, Name: input.Name, Group: input.Group, Active: true}, nil
}

type stubSpecials struct {
	services.SpecialTypeService
}

func (stubSpecials) ListSpecialTypes(ctx context.Context, enabledOnly bool) ([]*models.SpecialType, error) {
	return []*models.SpecialType{{ID: 1, Name: "ace", Enabled: true}}, nil
}

func newTestRouter(players *stubPlayers) *chi.Mux {
	router := chi.NewRouter()
	SetupRoutes(
		router,
		Options{JWTSecret: testSecret, AllowedOrigins: []string{"*"}},
		handlers.NewAuthHandler(nil),
		handlers.NewPlayerHandler(players),
		handlers.NewTournamentHandler(nil),
		handlers.NewRoundHandler(nil),
		handlers.NewMatchHandler(nil),
		handlers.NewSpecialTypeHandler(stubSpecials{}),
		handlers.NewDashboardHandler(nil),
		handlers.NewWebSocketHandler(realtime.NewHub(nil), nil, nil),
	)
	return router
}

func operatorToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "ops@ladder.test",
		"role": services.RoleOperator,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestSetupRoutes_PublicReads(t *testing.T) {
	router := newTestRouter(&stubPlayers{})

	for _, path := range []string{"/players", "/specials", "/healthz"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestSetupRoutes_WritesRequireOperator(t *testing.T) {
	players := &stubPlayers{}
	router := newTestRouter(players)

	protected := []struct{ method, path string }{
		{http.MethodPost, "/players"},
		{http.MethodDelete, "/players/1"},
		{http.MethodPost, "/tournaments"},
		{http.MethodPost, "/tournaments/1/activate"},
		{http.MethodPost, "/tournaments/1/rounds/1"},
		{http.MethodPost, "/tournaments/1/final-ranking"},
		{http.MethodPut, "/matches/1/score"},
		{http.MethodPost, "/specials"},
	}
	for _, tt := range protected {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tt.method, tt.path)
	}

	req := httptest.NewRequest(http.MethodPost, "/players", strings.NewReader(`{"name":"Ida","group":"top"}`))
	req.Header.Set("Authorization", "Bearer "+operatorToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 1, players.created)
}
