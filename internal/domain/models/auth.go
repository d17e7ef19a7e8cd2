package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the only role allowed to use the admin API
const AdminRole = "admin"

// AdminClaims is the JWT claim set issued to CMS administrators.
// The subject carries the numeric admin id.
type AdminClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AdminID parses the subject claim into an admin id
func (c *AdminClaims) AdminID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("subject %q is not an admin id", c.Subject)
	}
	return id, nil
}
