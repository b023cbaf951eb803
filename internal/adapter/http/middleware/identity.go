package middleware

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CallerIDKey is where the resolved caller identity lives on the gin
// context. Empty or absent means the request carries no identity.
const CallerIDKey = "x-caller-id"

type Identity struct {
	Secret string
}

func (i *Identity) CreateToken(callerID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": callerID,
		"exp": time.Now().Add(time.Hour * 3).Unix(),
	})

	return token.SignedString([]byte(i.Secret))
}

func (i *Identity) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(i.Secret), nil
	})

	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return "", fmt.Errorf("unexpected claims type")
	}

	sub, _ := claims["sub"].(string)

	return sub, nil
}

func CreateTokenForCaller(callerID string) (string, error) {
	identity := Identity{Secret: os.Getenv("JWT_SECRET")}
	return identity.CreateToken(callerID)
}

// IdentityMiddleware resolves the caller identity from a Bearer token when
// one is present and valid. It never aborts: the handlers own the decision
// about missing identity (create-task answers 400, list answers 401), so
// an unauthenticated request must still reach them.
func IdentityMiddleware() gin.HandlerFunc {
	identity := Identity{Secret: os.Getenv("JWT_SECRET")}

	return func(c *gin.Context) {
		bearer := c.GetHeader("Authorization")

		if strings.HasPrefix(bearer, "Bearer ") {
			if callerID, err := identity.VerifyToken(strings.TrimPrefix(bearer, "Bearer ")); err == nil {
				c.Set(CallerIDKey, callerID)
			}
		}

		c.Next()
	}
}

// CallerID returns the identity resolved for this request, or "".
func CallerID(c *gin.Context) string {
	return c.GetString(CallerIDKey)
}
