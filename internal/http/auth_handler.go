package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"

	"task-allocator.com/task-allocator/internal/auth"
	"task-allocator.com/task-allocator/internal/constants"
	dto "task-allocator.com/task-allocator/internal/data_models"
	apperrors "task-allocator.com/task-allocator/internal/errors"
	"task-allocator.com/task-allocator/internal/http/validators"
	"task-allocator.com/task-allocator/internal/session"
)

func (h *Handler) SignUp(c echo.Context) error {
	var req dto.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Failure("invalid JSON payload"))
	}

	if err := validators.ValidateSignUpRequest(&req); err != nil {
		return c.JSON(apperrors.StatusCode(err), dto.Failure(apperrors.UserMessage(err, "Something went wrong")))
	}

	ctx := c.Request().Context()
	email := validators.NormalizeEmail(req.Email)

	uid, err := h.authService.Register(ctx, email, req.Password, req.Name, constants.UserRole(req.UserRole))
	if err != nil {
		if apperrors.IsException(err) {
			return c.JSON(apperrors.StatusCode(err), dto.Failure(apperrors.UserMessage(err, "Something went wrong")))
		}
		slog.ErrorContext(ctx, "signup failed", slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, dto.Failure("Something went wrong"))
	}

	return c.JSON(http.StatusCreated, dto.AuthResult{
		Result: dto.Success("User registered successfully"),
		UserID: uid,
	})
}

func (h *Handler) SignIn(c echo.Context) error {
	var req dto.SignInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Failure("invalid JSON payload"))
	}

	if err := validators.ValidateSignInRequest(&req); err != nil {
		return c.JSON(apperrors.StatusCode(err), dto.Failure(apperrors.UserMessage(err, "Something went wrong")))
	}

	ctx := c.Request().Context()
	email := validators.NormalizeEmail(req.Email)

	credential, profile, err := h.authService.Authenticate(ctx, email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(apperrors.StatusCode(apperrors.ErrInvalidCredentials), dto.Failure(apperrors.ErrInvalidCredentials.Message))
		}
		slog.ErrorContext(ctx, "signin failed", slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, dto.Failure("Something went wrong"))
	}

	sessionUser := &session.User{UID: credential.UID, Email: credential.Email}
	if profile != nil {
		sessionUser.Name = profile.Name
		sessionUser.Role = string(profile.Role)
	}

	if err := h.sessions.SaveUser(c.Response(), c.Request(), sessionUser); err != nil {
		slog.ErrorContext(ctx, "session save failed", slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, dto.Failure("Something went wrong"))
	}

	return c.JSON(http.StatusOK, dto.AuthResult{
		Result: dto.Success("Login successful"),
		UserID: credential.UID,
	})
}

func (h *Handler) SignOut(c echo.Context) error {
	if err := h.sessions.Clear(c.Response(), c.Request()); err != nil {
		slog.ErrorContext(c.Request().Context(), "session clear failed", slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, dto.Failure("Something went wrong"))
	}

	return c.JSON(http.StatusOK, dto.Success("Logout successful"))
}

// UserExists probes the users collection by normalized email. Following
// the account flow's result contract, an absent user is reported as an
// unsuccessful result with a message rather than an error.
func (h *Handler) UserExists(c echo.Context) error {
	email := validators.NormalizeEmail(c.QueryParam("email"))
	if !validators.IsValidEmail(email) {
		return c.JSON(http.StatusBadRequest, dto.Failure(apperrors.ErrInvalidEmail.Message))
	}

	ctx := c.Request().Context()

	exists, err := h.authService.UserExists(ctx, email)
	if err != nil {
		slog.ErrorContext(ctx, "user existence probe failed", slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, dto.Failure("Something went wrong"))
	}

	if !exists {
		return c.JSON(http.StatusOK, dto.Result{Success: false, Message: "User does not exist"})
	}

	return c.JSON(http.StatusOK, dto.Success("User exists"))
}

// OAuthBegin starts the federated handshake for the provider named in
// the route. An already-completed handshake short-circuits to the
// dashboard.
func (h *Handler) OAuthBegin(c echo.Context) error {
	r := withProviderParam(c)

	if _, err := gothic.CompleteUserAuth(c.Response(), r); err == nil {
		return c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
	}

	gothic.BeginAuthHandler(c.Response(), r)
	return nil
}

func (h *Handler) OAuthCallback(c echo.Context) error {
	r := withProviderParam(c)
	ctx := c.Request().Context()

	gothUser, err := gothic.CompleteUserAuth(c.Response(), r)
	if err != nil {
		slog.ErrorContext(ctx, "could not complete federated auth", slog.Any("error", err))
		return c.Redirect(http.StatusTemporaryRedirect, "/")
	}

	email := validators.NormalizeEmail(gothUser.Email)
	if email == "" {
		slog.ErrorContext(ctx, "federated user has no email", slog.String("provider", gothUser.Provider))
		return c.Redirect(http.StatusTemporaryRedirect, "/")
	}

	profile, err := h.authService.UpsertOAuthUser(ctx, email, oauthDisplayName(gothUser))
	if err != nil {
		slog.ErrorContext(ctx, "could not upsert federated user", slog.Any("error", err))
		return c.Redirect(http.StatusTemporaryRedirect, "/")
	}

	sessionUser := &session.User{
		UID:   profile.UID,
		Email: profile.Email,
		Name:  profile.Name,
		Role:  string(profile.Role),
	}

	if err := h.sessions.SaveUser(c.Response(), c.Request(), sessionUser); err != nil {
		slog.ErrorContext(ctx, "session save failed", slog.Any("error", err))
		return c.Redirect(http.StatusTemporaryRedirect, "/")
	}

	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// withProviderParam moves the provider path parameter into the query
// string where gothic looks for it.
func withProviderParam(c echo.Context) *http.Request {
	r := c.Request()
	q := r.URL.Query()
	q.Set("provider", c.Param("provider"))
	r.URL.RawQuery = q.Encode()
	return r
}

func oauthDisplayName(user goth.User) string {
	if user.Name != "" {
		return user.Name
	}
	if user.NickName != "" {
		return user.NickName
	}
	return user.Email
}
