package handler

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-table-reservation/internal/config"
	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/repository"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
	"github.com/iliyamo/restaurant-table-reservation/internal/utils"
)

// Format rules for registration input.  These are wire-level
// checks and live here rather than in the store: the registries
// only enforce uniqueness.
var (
	usernameFormat = regexp.MustCompile(`^\w+$`)
	emailFormat    = regexp.MustCompile(`^\w+@\w+\.\w+$`)
)

// AuthHandler bundles dependencies for the auth endpoints.  The
// archive may be nil when no database is configured.
type AuthHandler struct {
	Cfg     config.Config
	Store   *store.Store
	Archive *repository.Archive
}

func NewAuthHandler(cfg config.Config, s *store.Store, a *repository.Archive) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Store: s, Archive: a}
}

// ----- DTOs -----

type addressPart struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Street  string `json:"street"`
}

type registerReq struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Email    string      `json:"email"`
	Role     string      `json:"role"` // client | manager
	Address  addressPart `json:"address"`
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type authResp struct {
	User   model.User `json:"user"`
	Access tokenPart  `json:"access"`
}

// Register creates a user and returns an access token immediately.
// Format checks (username, email, address completeness, role) run
// here; the store only enforces username/email uniqueness.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if !usernameFormat.MatchString(req.Username) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid username format"})
	}
	if !emailFormat.MatchString(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email format"})
	}
	if req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password required"})
	}
	role := model.Role(strings.ToLower(strings.TrimSpace(req.Role)))
	if !role.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role is not valid"})
	}
	if req.Address.Country == "" || req.Address.City == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "address is not complete"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}
	addr := model.Address{Country: req.Address.Country, City: req.Address.City, Street: req.Address.Street}

	u, err := h.Store.AddUser(req.Username, hash, req.Email, role, addr)
	if err != nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "username or email already taken"})
	}
	if h.Archive != nil {
		_ = h.Archive.SaveUser(c.Request().Context(), u)
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.Username, string(u.Role), h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusCreated, authResp{
		User:   u,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Login verifies credentials and returns a fresh access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	u, ok := h.Store.FindByUsername(req.Username)
	if !ok || !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.Username, string(u.Role), h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		User:   u,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	username, _ := c.Get("username").(string)
	u, ok := h.Store.FindByUsername(username)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": u})
}
