package auth

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Claims carries the session user inside the token so the middleware
// can rebuild the current user without a store lookup.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.StandardClaims
}

func jwtKey() []byte {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		return []byte(v)
	}
	return []byte("bengkel-dev-secret")
}

type service struct {
	users UserDirectory
}

// NewService creates a new auth service.
func NewService(users UserDirectory) Service {
	return &service{users: users}
}

func (s *service) Login(role string) (string, *model.User, error) {
	u, err := s.users.FirstUserByRole(model.Role(role))
	if err != nil {
		u = &model.User{ID: uuid.New(), Name: "Guest", Role: model.RolePublic}
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		Name: u.Name,
		Role: string(u.Role),
		StandardClaims: jwt.StandardClaims{
			Subject:   u.ID.String(),
			ExpiresAt: expirationTime.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey())
	if err != nil {
		return "", nil, err
	}
	return tokenString, u, nil
}

// ParseToken validates a session token and rebuilds the user it names.
func ParseToken(tokenString string) (*model.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.NewValidationError("invalid token", jwt.ValidationErrorClaimsInvalid)
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, err
	}
	return &model.User{ID: id, Name: claims.Name, Role: model.Role(claims.Role)}, nil
}
