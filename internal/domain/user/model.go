package user

import (
	"strings"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/league"
)

// Credentials holds the upstream bearer token. The dashboard never inspects it.
type Credentials struct {
	BearerToken string `json:"bearerToken"`
}

func (c Credentials) Valid() bool {
	token := strings.TrimSpace(c.BearerToken)
	return token != "" && !strings.ContainsAny(token, " \t\r\n")
}

// Profile is the signed-in upstream account.
type Profile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Session is the outcome of a successful login.
type Session struct {
	Credentials Credentials     `json:"credentials"`
	Profile     Profile         `json:"profile"`
	Leagues     []league.League `json:"leagues"`
}
