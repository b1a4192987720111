package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"

	config "github.com/Keoroanthony/go-orders/configs"
)

// SubjectKey is the gin context key under which RequireAuth stores the
// verified token subject.
const SubjectKey = "subject"

// Verifier validates a bearer credential and returns its subject claim.
// The implementation is chosen once at startup: OIDCVerifier in real
// deployments, StaticVerifier in test mode.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (string, error)
}

type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCVerifier discovers the identity provider from the configured issuer
// and builds a verifier that checks signature (against the provider's key
// set), issuer, audience, expiry and signing algorithm.
func NewOIDCVerifier(ctx context.Context, cfg *config.Settings) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Auth0Issuer)
	if err != nil {
		return nil, fmt.Errorf("OIDC provider init error: %w", err)
	}

	verifier := provider.Verifier(&oidc.Config{
		ClientID:             cfg.Auth0APIAudience,
		SupportedSigningAlgs: cfg.Auth0Algorithms,
	})

	return &OIDCVerifier{verifier: verifier}, nil
}

func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) (string, error) {
	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}
	return token.Subject, nil
}

// StaticVerifier admits every credential with a fixed subject. Used when
// ENV=test so handler tests run without an identity provider.
type StaticVerifier struct {
	Subject string
}

func (v StaticVerifier) Verify(ctx context.Context, rawToken string) (string, error) {
	return v.Subject, nil
}

// RequireAuth gates a route group: it extracts the bearer token from the
// Authorization header and rejects the request before any handler runs if
// verification fails.
func RequireAuth(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header missing"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be a bearer token"})
			return
		}

		subject, err := v.Verify(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token verification failed"})
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}
