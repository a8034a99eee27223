package model

// Principal is the authenticated identity for a request. It is hydrated from
// the JWT by the auth middleware and passed explicitly through the gin
// context; there is no process-wide auth state.
type Principal struct {
	UserID int64    `json:"user_id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
