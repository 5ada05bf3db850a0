package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/session-toolbar/internal/api/dto"
	"github.com/spec-kit/session-toolbar/internal/domain"
	"github.com/spec-kit/session-toolbar/internal/events"
	"github.com/spec-kit/session-toolbar/internal/i18n"
	"github.com/spec-kit/session-toolbar/internal/service"
	"github.com/spec-kit/session-toolbar/internal/storage"
	apperrors "github.com/spec-kit/session-toolbar/pkg/util"
)

// StoreProvider hands out the storage of one browser client.
type StoreProvider interface {
	StoreFor(clientID string) storage.KeyValueStore
}

// ToolbarDependencies bundles what the toolbar endpoints need.
type ToolbarDependencies struct {
	Stores       StoreProvider
	Translator   *i18n.Translator
	Events       events.Dispatcher
	Logger       *zap.Logger
	ClientCookie string
	CookieTTL    time.Duration
}

// ToolbarHandler serves the session toolbar to browser clients.
type ToolbarHandler struct {
	deps ToolbarDependencies
}

// NewToolbarHandler constructs handler.
func NewToolbarHandler(deps ToolbarDependencies) *ToolbarHandler {
	if deps.ClientCookie == "" {
		deps.ClientCookie = "toolbar_client"
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &ToolbarHandler{deps: deps}
}

// StoreToken handles PUT /session/token.
func (h *ToolbarHandler) StoreToken(c *fiber.Ctx) error {
	var req dto.StoreTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return apperrors.NewValidationError("token required", nil)
	}

	clientID := h.clientID(c)
	if err := h.deps.Stores.StoreFor(clientID).Set(c.UserContext(), storage.TokenKey, token); err != nil {
		return apperrors.NewUnavailable("client storage unavailable", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get handles GET /toolbar.
func (h *ToolbarHandler) Get(c *fiber.Ctx) error {
	toolbar, _ := h.mount(c)

	resp := dto.ToolbarResponse{
		Identity: toolbar.Identity(),
		Menu:     dto.FromMenu(toolbar.Menu()),
		Locales:  toolbar.LocaleOptions(),
	}
	if h.deps.Translator != nil {
		resp.Language = h.deps.Translator.Language().String()
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Action handles POST /toolbar/actions/:key.
func (h *ToolbarHandler) Action(c *fiber.Ctx) error {
	toolbar, nav := h.mount(c)

	key := c.Params("key")
	if err := toolbar.Click(c.UserContext(), key); err != nil {
		if errors.Is(err, service.ErrUnknownAction) {
			return apperrors.NewNotFound("menu action", map[string]any{"key": key})
		}
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NavigationResponse{Navigate: nav.Last()}})
}

// SelectLocale handles POST /toolbar/locale.
func (h *ToolbarHandler) SelectLocale(c *fiber.Ctx) error {
	var req dto.SelectLocaleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if !knownLocale(req.Code) {
		return apperrors.NewValidationError("unsupported locale", map[string]any{"code": req.Code})
	}

	toolbar, _ := h.mount(c)
	toolbar.SelectLocale(c.UserContext(), req.Code)

	var resp dto.LocaleResponse
	if h.deps.Translator != nil {
		resp.Language = h.deps.Translator.Language().String()
	}
	return c.JSON(fiber.Map{"data": resp})
}

func (h *ToolbarHandler) mount(c *fiber.Ctx) (*service.Toolbar, *service.NavigationRecorder) {
	clientID := h.clientID(c)
	nav := &service.NavigationRecorder{}
	deps := service.ToolbarDependencies{
		ClientID:  clientID,
		Store:     h.deps.Stores.StoreFor(clientID),
		Navigator: nav,
		Events:    h.deps.Events,
		Logger:    h.deps.Logger,
	}
	// A nil *Translator must not reach the interface.
	if h.deps.Translator != nil {
		deps.Locale = h.deps.Translator
	}
	toolbar := service.NewToolbar(deps)
	toolbar.Mount(c.UserContext())
	return toolbar, nav
}

// clientID returns the caller's client id, issuing a cookie on first contact.
func (h *ToolbarHandler) clientID(c *fiber.Ctx) string {
	if id := c.Cookies(h.deps.ClientCookie); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	id := uuid.NewString()
	cookie := &fiber.Cookie{
		Name:     h.deps.ClientCookie,
		Value:    id,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if h.deps.CookieTTL > 0 {
		cookie.Expires = time.Now().Add(h.deps.CookieTTL)
	}
	c.Cookie(cookie)
	return id
}

func knownLocale(code string) bool {
	for _, opt := range domain.LocaleOptions() {
		if opt.Code == code {
			return true
		}
	}
	return false
}
