package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	cookieName = "qaprep_session"
	sessionTTL = 7 * 24 * time.Hour
)

// userIDLocal is the fiber.Ctx locals key holding the authenticated user id.
const userIDLocal = "userID"

// Claims are the JWT claims carried in the session cookie.
type Claims struct {
	UserID int `json:"uid"`
	jwt.RegisteredClaims
}

// Auth signs and verifies session cookies. The session is entirely
// client-side: a signed HttpOnly cookie holding the user id, no server store.
type Auth struct {
	secret []byte
}

// New creates an Auth using the given HS256 signing secret.
func New(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// SignToken issues a session token for the user.
func (a *Auth) SignToken(userID int) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(a.secret)
}

// ParseToken verifies a session token and returns its claims.
func (a *Auth) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if c, ok := token.Claims.(*Claims); ok && token.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// SetSessionCookie binds the session to the response.
func (a *Auth) SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(sessionTTL),
	})
}

// ClearSessionCookie ends the session.
func (a *Auth) ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}

// RequireAuth is a middleware that redirects to /login unless the request
// carries a valid session cookie. On success the user id is stored in
// c.Locals for the handler.
func (a *Auth) RequireAuth(c *fiber.Ctx) error {
	tok := c.Cookies(cookieName)
	if tok == "" {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	claims, err := a.ParseToken(tok)
	if err != nil {
		a.ClearSessionCookie(c)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	c.Locals(userIDLocal, claims.UserID)
	return c.Next()
}

// CurrentUserID returns the authenticated user id, or false when the
// request is anonymous (public pages also call this to adjust navigation).
func (a *Auth) CurrentUserID(c *fiber.Ctx) (int, bool) {
	if id, ok := c.Locals(userIDLocal).(int); ok {
		return id, true
	}
	tok := c.Cookies(cookieName)
	if tok == "" {
		return 0, false
	}
	claims, err := a.ParseToken(tok)
	if err != nil {
		return 0, false
	}
	return claims.UserID, true
}

// UserID returns the user id set by RequireAuth. Only valid behind the
// middleware.
func UserID(c *fiber.Ctx) int {
	id, _ := c.Locals(userIDLocal).(int)
	return id
}
