package httpserver

import (
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"

	"product-manager/internal/apperr"
	"product-manager/internal/service"
	"product-manager/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return apperr.Validation("request.body.invalid")
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return err
	}

	l.Info("login_success", "username", res.Username)
	return c.JSON(http.StatusOK, LoginResponse{Token: res.Token, Username: res.Username, Email: res.Email})
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid body", "error", err)
		return apperr.Validation("request.body.invalid")
	}
	if err := validateRegister(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "validation", "error", err)
		return err
	}

	if err := h.Svc.Register(ctx, req.Username, req.Email, req.Password); err != nil {
		return err
	}

	l.Info("register_success", "username", req.Username)
	return c.NoContent(http.StatusOK)
}

func validateRegister(req *RegisterRequest) error {
	if len(req.Username) < 3 || len(req.Username) > 20 {
		return apperr.Validation("register.username.invalid")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return apperr.Validation("register.email.invalid")
	}
	if len(req.Password) < 6 || len(req.Password) > 40 {
		return apperr.Validation("register.password.invalid")
	}
	return nil
}
