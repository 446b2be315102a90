package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"arttoy-storefront/internal/domain/user"
	"arttoy-storefront/internal/infra"
	"arttoy-storefront/internal/pkg/clock"
	"arttoy-storefront/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnauthenticated    = errs.New("unauthenticated")
	ErrInvalidCredentials = errs.New("invalid credentials")
)

// SessionSource is the backend's authentication surface. Token issuance and
// validation are owned upstream; the gateway only forwards credentials and
// asks who a token belongs to.
type SessionSource interface {
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, token string) (string, error)
}

// SessionGate is the single place that answers "what role is behind this
// credential". Login, logout and role resolution all go through it; nothing
// else polls the token store.
type SessionGate interface {
	Login(ctx context.Context, email, password string) (string, user.Role, error)
	Logout(token string)
	// Resolve returns the role behind the token, consulting the backend at
	// most once per cache window. A missing or expired credential fails
	// with ErrUnauthenticated, distinct from any quota condition.
	Resolve(ctx context.Context, token string) (user.Role, error)
}

type cachedRole struct {
	role      user.Role
	expiresAt time.Time
}

type sessionGateImpl struct {
	source SessionSource
	clock  clock.Clock
	ttl    time.Duration

	mu    sync.RWMutex
	roles map[string]cachedRole
}

func NewSessionGate(source SessionSource, clk clock.Clock, ttl time.Duration) SessionGate {
	return &sessionGateImpl{
		source: source,
		clock:  clk,
		ttl:    ttl,
		roles:  make(map[string]cachedRole),
	}
}

func (g *sessionGateImpl) Login(ctx context.Context, email, password string) (string, user.Role, error) {
	token, err := g.source.Login(ctx, email, password)
	if err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return "", "", errs.Wrap(err, "login request failed")
		}
		return "", "", errs.Mark(err, ErrInvalidCredentials)
	}

	role, err := g.Resolve(ctx, token)
	if err != nil {
		return "", "", err
	}
	return token, role, nil
}

func (g *sessionGateImpl) Logout(token string) {
	g.mu.Lock()
	delete(g.roles, cacheKey(token))
	g.mu.Unlock()
}

func (g *sessionGateImpl) Resolve(ctx context.Context, token string) (user.Role, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}
	if tokenExpired(token, g.clock.Now()) {
		// Cheap local fast-fail; the backend remains the authority.
		g.Logout(token)
		return "", ErrUnauthenticated
	}

	key := cacheKey(token)
	g.mu.RLock()
	cached, ok := g.roles[key]
	g.mu.RUnlock()
	if ok && g.clock.Now().Before(cached.expiresAt) {
		return cached.role, nil
	}

	roleStr, err := g.source.Me(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindUnauthenticated) || infra.IsKind(err, infra.KindForbidden) {
			// The backend rejected the credential itself; the cached role
			// must not outlive it.
			g.Logout(token)
			return "", errs.Mark(err, ErrUnauthenticated)
		}
		// A backend blip is not an auth failure and does not invalidate
		// the credential.
		return "", errs.Wrap(err, "failed to resolve session role")
	}

	role, err := user.NewRole(roleStr)
	if err != nil {
		return "", errs.Mark(err, ErrUnauthenticated)
	}

	g.mu.Lock()
	g.roles[key] = cachedRole{role: role, expiresAt: g.clock.Now().Add(g.ttl)}
	g.mu.Unlock()
	return role, nil
}

// tokenExpired peeks at the unverified exp claim to skip a doomed upstream
// round trip. Signature validation stays upstream-owned; a token this parse
// cannot read is simply forwarded and judged there.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
