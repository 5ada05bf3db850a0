package http

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/spec-kit/session-toolbar/internal/api/dto"
	"github.com/spec-kit/session-toolbar/internal/api/http/handlers"
	"github.com/spec-kit/session-toolbar/internal/auth/authtest"
	"github.com/spec-kit/session-toolbar/internal/config"
	"github.com/spec-kit/session-toolbar/internal/events"
	"github.com/spec-kit/session-toolbar/internal/i18n"
	"github.com/spec-kit/session-toolbar/internal/observability"
	"github.com/spec-kit/session-toolbar/internal/persistence"
)

const cookieName = "toolbar_client"

type testServer struct {
	app        *fiber.App
	redis      *miniredis.Miniredis
	translator *i18n.Translator
	metrics    *observability.Metrics
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	mr := miniredis.RunT(t)
	logger := zap.NewNop()
	redis := persistence.NewRedis(config.RedisConfig{Addr: mr.Addr()}, config.ToolbarConfig{KeyNamespace: "toolbar"}, logger)
	t.Cleanup(redis.Close)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)
	events.RegisterObservers(dispatcher, metrics, logger)
	translator := i18n.NewTranslator(language.English, logger)

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health: handlers.NewHealthHandler("session-toolbar", "test", redis),
		Toolbar: handlers.NewToolbarHandler(handlers.ToolbarDependencies{
			Stores:       redis,
			Translator:   translator,
			Events:       dispatcher,
			Logger:       logger,
			ClientCookie: cookieName,
		}),
	})

	return &testServer{app: app, redis: mr, translator: translator, metrics: metrics}
}

func (s *testServer) do(t *testing.T, method, path, body, clientID string) (*nethttp.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if clientID != "" {
		req.AddCookie(&nethttp.Cookie{Name: cookieName, Value: clientID})
	}

	resp, err := s.app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	decoded := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	}
	return resp, decoded
}

func clientCookie(t *testing.T, resp *nethttp.Response) string {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == cookieName {
			return c.Value
		}
	}
	t.Fatalf("response carried no %s cookie", cookieName)
	return ""
}

func (s *testServer) login(t *testing.T, token string) string {
	t.Helper()
	body, err := json.Marshal(dto.StoreTokenRequest{Token: token})
	require.NoError(t, err)
	resp, _ := s.do(t, fiber.MethodPut, "/session/token", string(body), "")
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	return clientCookie(t, resp)
}

func toolbarMenu(t *testing.T, payload map[string]any) []map[string]any {
	t.Helper()
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	rawMenu, ok := data["menu"].([]any)
	require.True(t, ok)
	out := make([]map[string]any, 0, len(rawMenu))
	for _, item := range rawMenu {
		out = append(out, item.(map[string]any))
	}
	return out
}

func TestGetToolbarForAdmin(t *testing.T) {
	s := newTestServer(t)
	clientID := s.login(t, authtest.Token(t, "alice", true))

	resp, payload := s.do(t, fiber.MethodGet, "/toolbar", "", clientID)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	menu := toolbarMenu(t, payload)
	require.Len(t, menu, 6)
	assert.Equal(t, "alice", menu[0]["username"])
	assert.Equal(t, "PlatformAdmin", menu[0]["role_label"])
	assert.Equal(t, "/user/profile/login_settings", menu[2]["target"])
	assert.Equal(t, "logout", menu[5]["key"])

	data := payload["data"].(map[string]any)
	assert.Equal(t, "en", data["language"])
	assert.Len(t, data["locales"], 2)
	assert.Equal(t, int64(1), s.metrics.EventCount(string(events.EventSessionMounted)))
}

func TestGetToolbarAnonymous(t *testing.T) {
	s := newTestServer(t)

	resp, payload := s.do(t, fiber.MethodGet, "/toolbar", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, clientCookie(t, resp))

	menu := toolbarMenu(t, payload)
	require.Len(t, menu, 6)
	assert.Nil(t, menu[0]["username"])
}

func TestGetToolbarReissuesInvalidClientCookie(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.redis.Set("toolbar:not-a-uuid:token", authtest.Token(t, "mallory", true)))

	resp, payload := s.do(t, fiber.MethodGet, "/toolbar", "", "not-a-uuid")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	reissued := clientCookie(t, resp)
	assert.NotEqual(t, "not-a-uuid", reissued)
	_, err := uuid.Parse(reissued)
	assert.NoError(t, err)

	menu := toolbarMenu(t, payload)
	require.Len(t, menu, 6)
	assert.Nil(t, menu[0]["username"])
	assert.Nil(t, menu[0]["role_label"])
}

func TestGetToolbarMalformedToken(t *testing.T) {
	s := newTestServer(t)
	clientID := s.login(t, "not-a-token")

	resp, payload := s.do(t, fiber.MethodGet, "/toolbar", "", clientID)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, toolbarMenu(t, payload), 6)
	assert.Equal(t, int64(1), s.metrics.EventCount(string(events.EventTokenDecodeFailed)))
}

func TestActionNavigates(t *testing.T) {
	s := newTestServer(t)
	clientID := s.login(t, authtest.Token(t, "bob", false))

	resp, payload := s.do(t, fiber.MethodPost, "/toolbar/actions/user_profile_clusters", "", clientID)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "/user/profile/my_clusters", payload["data"].(map[string]any)["navigate"])
}

func TestActionLogoutClearsToken(t *testing.T) {
	s := newTestServer(t)
	clientID := s.login(t, authtest.Token(t, "bob", false))
	key := "toolbar:" + clientID + ":token"
	require.True(t, s.redis.Exists(key))

	for i := 0; i < 2; i++ {
		resp, payload := s.do(t, fiber.MethodPost, "/toolbar/actions/logout", "", clientID)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "/login", payload["data"].(map[string]any)["navigate"])
		assert.False(t, s.redis.Exists(key))
	}
	assert.Equal(t, int64(2), s.metrics.EventCount(string(events.EventSessionLoggedOut)))

	_, payload := s.do(t, fiber.MethodGet, "/toolbar", "", clientID)
	assert.Nil(t, toolbarMenu(t, payload)[0]["username"])
}

func TestActionUnknownKey(t *testing.T) {
	s := newTestServer(t)

	resp, payload := s.do(t, fiber.MethodPost, "/toolbar/actions/divider-1", "", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", payload["error"].(map[string]any)["code"])
}

func TestSelectLocale(t *testing.T) {
	s := newTestServer(t)

	resp, payload := s.do(t, fiber.MethodPost, "/toolbar/locale", `{"code":"chinese_simplified"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "zh-Hans", payload["data"].(map[string]any)["language"])
	assert.Equal(t, language.SimplifiedChinese, s.translator.Language())

	resp, payload = s.do(t, fiber.MethodPost, "/toolbar/locale", `{"code":"klingon"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", payload["error"].(map[string]any)["code"])
}

func TestStoreTokenRequiresToken(t *testing.T) {
	s := newTestServer(t)

	resp, _ := s.do(t, fiber.MethodPut, "/session/token", `{"token":"  "}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	resp, payload := s.do(t, fiber.MethodGet, "/health/ready", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", payload["status"])

	resp, payload = s.do(t, fiber.MethodGet, "/health/live", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "session-toolbar", payload["service"])
}
