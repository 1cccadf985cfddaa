package auth

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"codeberg.org/skillsprint/webfront/internal/auth"
	"codeberg.org/skillsprint/webfront/internal/backend"
	httperrors "codeberg.org/skillsprint/webfront/internal/errors"
	"codeberg.org/skillsprint/webfront/internal/gate"
	"codeberg.org/skillsprint/webfront/internal/logger"
	"codeberg.org/skillsprint/webfront/internal/reconcile"
	"codeberg.org/skillsprint/webfront/skillsprint/users"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

// CredentialStore is the slice of the user repository the credential
// handlers need: caching a registered account's bcrypt hash and reading it
// back when the backend is unreachable.
type CredentialStore interface {
	SaveLocalCredentials(ctx context.Context, email, name, passwordHash string) (*users.User, error)
	FindLocalByEmail(ctx context.Context, email string) (*users.User, string, error)
}

// LoginHandler godoc
// @Summary Credentials login
// @Description Authenticate against the backend and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/login [post]
func LoginHandler(client *backend.Client, creds CredentialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			httperrors.ValidationError(c, err)
			return
		}

		user, token, err := client.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			// a rejected login never touches the session store
			if errors.Is(err, backend.ErrInvalidCredentials) {
				httperrors.Unauthorized(c, "invalid email or password")
				return
			}

			// backend unreachable: verify against the locally cached hash.
			// The backend stays the source of truth; this only keeps an
			// already registered user able to sign in through an outage.
			local, hash, lerr := creds.FindLocalByEmail(c.Request.Context(), req.Email)
			if lerr != nil || !auth.CheckPassword(hash, req.Password) {
				httperrors.InternalError(c, "login failed", err)
				return
			}

			localToken, terr := auth.GenerateJWT(local.ID, local.Email, local.Role)
			if terr != nil {
				httperrors.InternalError(c, "login failed", terr)
				return
			}

			logger.Warn("backend unreachable, login served from local credentials",
				"email", req.Email,
				"error", err,
			)

			sessionUser := local.ToSessionUser()
			if store, ok := gate.StoreFrom(c); ok {
				store.Login(sessionUser, localToken)
			}

			c.JSON(http.StatusOK, AuthResponse{
				User:  &sessionUser,
				Token: localToken,
			})
			return
		}

		if store, ok := gate.StoreFrom(c); ok {
			store.Login(*user, token)
		}

		c.JSON(http.StatusOK, AuthResponse{
			User:  user,
			Token: token,
		})
	}
}

// RegisterHandler godoc
// @Summary Create an account
// @Description Register against the backend and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account fields"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/register [post]
func RegisterHandler(client *backend.Client, creds CredentialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			httperrors.ValidationError(c, err)
			return
		}

		user, token, err := client.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, backend.ErrDuplicateAccount) {
				httperrors.Conflict(c, "an account with this email already exists")
				return
			}
			httperrors.InternalError(c, "registration failed", err)
			return
		}

		// cache the credentials at the edge for outage fallback, best-effort
		if hash, herr := auth.HashPassword(req.Password); herr == nil {
			if _, cerr := creds.SaveLocalCredentials(c.Request.Context(), req.Email, req.Name, hash); cerr != nil {
				logger.ErrorErr(cerr, "failed to cache local credentials", "email", req.Email)
			}
		}

		if store, ok := gate.StoreFrom(c); ok {
			store.Login(*user, token)
		}

		c.JSON(http.StatusCreated, AuthResponse{
			User:  user,
			Token: token,
		})
	}
}

// BeginAuthHandler godoc
// @Summary Start OAuth authentication
// @Description Begin OAuth authentication flow with specified provider (google, github)
// @Tags auth
// @Param provider path string true "OAuth provider" Enums(google, github)
// @Success 302 {string} string "Redirect to OAuth provider"
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider} [get]
func BeginAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		if !isValidProvider(provider) {
			httperrors.BadRequest(c, "invalid provider", nil)
			return
		}

		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary OAuth callback
// @Description OAuth provider callback. Provisions a local user, merges the identity into the session and returns a local JWT
// @Tags auth
// @Produce json
// @Param provider path string true "OAuth provider" Enums(google, github)
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/{provider}/callback [get]
func CallbackHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := c.Param("provider")

		q := c.Request.URL.Query()
		q.Add("provider", provider)
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			httperrors.InternalError(c, "authentication failed", err)
			return
		}

		user, err := userRepo.FindOrCreateByProvider(
			c.Request.Context(),
			gothUser.Provider,
			gothUser.UserID,
			gothUser.Email,
			gothUser.Name,
			gothUser.AvatarURL,
		)

		if err != nil {
			httperrors.InternalError(c, "failed to create user", err)
			return
		}

		if err := userRepo.TouchLastLogin(c.Request.Context(), user.ID); err != nil {
			logger.ErrorErr(err, "failed to record last login", "user_id", user.ID)
		}

		// rewrite the provider payload to the provisioned identity before
		// handing it to the reconciler, which owns the merge rules
		gothUser.UserID = user.ID
		if gothUser.RawData == nil {
			gothUser.RawData = map[string]interface{}{}
		}
		gothUser.RawData["role"] = string(user.Role)

		if store, ok := gate.StoreFrom(c); ok {
			reconcile.New(store).Observe(reconcile.StatusAuthenticated, &gothUser)
		}

		token, err := auth.GenerateJWT(user.ID, user.Email, user.Role)
		if err != nil {
			httperrors.InternalError(c, "failed to generate token", err)
			return
		}

		sessionUser := user.ToSessionUser()
		c.JSON(http.StatusOK, AuthResponse{
			User:  &sessionUser,
			Token: token,
		})
	}
}

// CheckHandler godoc
// @Summary Verify the session
// @Description Reconcile any held token against the backend identity query and return the settled state
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /api/v1/auth/check [post]
func CheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := gate.StoreFrom(c)
		if !ok {
			httperrors.InternalError(c, "session not resolved", nil)
			return
		}

		store.CheckAuth(c.Request.Context())

		c.JSON(http.StatusOK, SessionResponse{Session: store.State()})
	}
}

// GetCurrentUserHandler godoc
// @Summary Get current user
// @Description Get the session's authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
func GetCurrentUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := gate.StoreFrom(c)
		if !ok {
			httperrors.InternalError(c, "session not resolved", nil)
			return
		}

		c.JSON(http.StatusOK, SessionResponse{Session: store.State()})
	}
}

// UpdateProfileHandler godoc
// @Summary Update user profile
// @Description Update a locally provisioned user's name and avatar
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile update"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/profile [put]
// @Security BearerAuth
func UpdateProfileHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			httperrors.Unauthorized(c, "")
			return
		}

		var req UpdateProfileRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			httperrors.ValidationError(c, err)
			return
		}

		user, err := userRepo.UpdateProfile(c.Request.Context(), userID, req.Name, req.AvatarURL)
		if err != nil {
			httperrors.InternalError(c, "failed to update profile", err)
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Clear the session and any OAuth provider cookie
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/v1/auth/logout [post]
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if store, ok := gate.StoreFrom(c); ok {
			store.Logout()
		}

		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to logout user from gothic session")
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}

func isValidProvider(provider string) bool {
	validProviders := []string{"google", "github"}
	return slices.Contains(validProviders, provider)
}
