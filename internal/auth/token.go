package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adminrec/personnel-management/internal"
)

// Claim keys as they appear on the wire.
const (
	ClaimRole         = "role"
	ClaimEmployeeName = "employee_complete_name"
	ClaimEmployeeDNI  = "employee_dni"
)

// ClaimSet is the structured payload embedded in a token.
type ClaimSet struct {
	Role         string
	EmployeeName string
	EmployeeDNI  string
}

type Claims struct {
	Role         string `json:"role"`
	EmployeeName string `json:"employee_complete_name"`
	EmployeeDNI  string `json:"employee_dni"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed, time-bounded session tokens.
// Tokens are self-contained; there is no server-side session store and no
// revocation list, so expiry is the only invalidation mechanism.
type TokenService interface {
	Issue(subject string, claims ClaimSet) (string, error)
	Validate(tokenString string) (*Claims, error)
}

type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock overrides the time source. Test hook.
func (j *JWTTokenService) WithClock(now func() time.Time) *JWTTokenService {
	j.now = now
	return j
}

// Issue signs subject, claims and an expiry of now + fixed TTL. Stateless.
func (j *JWTTokenService) Issue(subject string, set ClaimSet) (string, error) {
	issuedAt := j.now()

	claims := &Claims{
		Role:         set.Role,
		EmployeeName: set.EmployeeName,
		EmployeeDNI:  set.EmployeeDNI,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// Validate fails on malformed tokens, signature mismatch and expiry. The
// expired/invalid distinction exists for logging; callers collapse both into
// one unauthenticated outcome.
func (j *JWTTokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secret, nil
	}, jwt.WithTimeFunc(j.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidToken
	}
	return claims, nil
}

// ExtractClaim is a structural accessor over already-validated claims; the
// request pipeline guarantees Validate ran first.
func ExtractClaim(claims *Claims, key string) string {
	if claims == nil {
		return ""
	}
	switch key {
	case ClaimRole:
		return claims.Role
	case ClaimEmployeeName:
		return claims.EmployeeName
	case ClaimEmployeeDNI:
		return claims.EmployeeDNI
	case "sub":
		return claims.Subject
	}
	return ""
}
