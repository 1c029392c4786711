package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alfdana/danashell/internal/auth"
	"github.com/alfdana/danashell/internal/store"
)

func (c *Controller) initAuthRoutes() {
	g := c.echo.Group("/api/v1/auth")
	g.POST("/signup", c.Signup)
	g.POST("/login", c.Login)
	g.POST("/logout", c.Logout)
	g.GET("/session", c.GetSession)
}

// signupRequest is the signup form payload.
type signupRequest struct {
	Method     string `json:"method"`
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Confirm    string `json:"confirm"`
	Name       string `json:"name"`
}

// loginRequest is the login form payload.
type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// authResponse reports an auth outcome. Failure is a recoverable result
// state shown inline by the form, never an HTTP error.
type authResponse struct {
	OK      bool               `json:"ok"`
	Failure string             `json:"failure,omitempty"`
	Profile *store.UserProfile `json:"profile,omitempty"`
}

// Signup creates the local account unless one already exists for the
// identifier.
func (c *Controller) Signup(ctx echo.Context) error {
	var req signupRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	profile, failure := c.auth.Signup(auth.SignupInput{
		Method:     store.CredentialMethod(req.Method),
		Identifier: req.Identifier,
		Password:   req.Password,
		Confirm:    req.Confirm,
		Name:       req.Name,
	})
	if !failure.Ok() {
		return ctx.JSON(http.StatusOK, authResponse{Failure: string(failure)})
	}
	return ctx.JSON(http.StatusOK, authResponse{OK: true, Profile: profile})
}

// Login checks the stored credential and activates the session.
func (c *Controller) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	profile, failure := c.auth.Login(req.Identifier, req.Password)
	if !failure.Ok() {
		return ctx.JSON(http.StatusOK, authResponse{Failure: string(failure)})
	}
	return ctx.JSON(http.StatusOK, authResponse{OK: true, Profile: profile})
}

// Logout clears the session flag. History records survive.
func (c *Controller) Logout(ctx echo.Context) error {
	c.auth.Logout()
	return ctx.JSON(http.StatusOK, authResponse{OK: true})
}

// GetSession reports the session flag and current profile.
func (c *Controller) GetSession(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"active":  c.auth.Active(),
		"profile": c.store.GetProfile(),
	})
}
