package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/classroom-portal/config"
	"github.com/lshigami/classroom-portal/internal/dto"
	"github.com/lshigami/classroom-portal/internal/model"
	"github.com/lshigami/classroom-portal/internal/repository"
	"github.com/rs/zerolog/log"
)

const principalKey = "principal"

// Claims are issued by the identity provider. Role may be empty, in which
// case it is looked up in the users table.
type Claims struct {
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UID   string
	Role  string
	Email string
	Name  string
}

// DisplayName is what gets stored on submissions: the email, else the name.
func (p Principal) DisplayName() string {
	if p.Email != "" {
		return p.Email
	}
	return p.Name
}

type Authenticator struct {
	secret   []byte
	userRepo repository.UserRepository
}

func NewAuthenticator(cfg *config.Config, userRepo repository.UserRepository) *Authenticator {
	return &Authenticator{secret: []byte(cfg.Auth.JWTSecret), userRepo: userRepo}
}

// IssueToken signs a token for sub. Used by tests and local tooling.
func (a *Authenticator) IssueToken(sub, role, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Authenticator) parse(tokenStr string) (*Claims, error) {
	if len(a.secret) == 0 {
		return nil, errors.New("jwt secret not configured")
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if sub, _ := claims.GetSubject(); sub == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

// Authenticate verifies the bearer token and stores the Principal on the
// gin context. A token without a role falls back to the users table.
func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "missing bearer token"})
			return
		}
		claims, err := a.parse(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			log.Warn().Err(err).Str("path", c.FullPath()).Msg("Authenticate: rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid token"})
			return
		}

		role := claims.Role
		if role == "" {
			user, err := a.userRepo.FindByUID(c.Request.Context(), claims.Subject)
			switch {
			case errors.Is(err, repository.ErrNotFound):
				c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "no role assigned"})
				return
			case err != nil:
				log.Error().Err(err).Str("uid", claims.Subject).Msg("Authenticate: role lookup failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "operation failed"})
				return
			}
			role = user.Role
			if claims.Email == "" {
				claims.Email = user.Email
			}
		}

		c.Set(principalKey, Principal{UID: claims.Subject, Role: role, Email: claims.Email, Name: claims.Name})
		c.Next()
	}
}

// RequireRole lets the request through only for the listed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "not authenticated"})
			return
		}
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "role " + p.Role + " cannot access this resource"})
	}
}

func RequireTeacher() gin.HandlerFunc { return RequireRole(model.RoleTeacher) }
func RequireStudent() gin.HandlerFunc { return RequireRole(model.RoleStudent) }

func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// SetPrincipal is used by handler tests to skip token parsing.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}
