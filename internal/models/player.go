package models

// Role is a player's secret game role. The empty string means the game
// has not started and no role has been dealt yet.
type Role string

const (
	RoleUnassigned Role = ""
	RoleMafia      Role = "mafia"
	RoleDetective  Role = "detective"
	RoleDoctor     Role = "doctor"
	RoleCivilian   Role = "civilian"
)

// IsGood reports whether the role plays on the civilian team
func (r Role) IsGood() bool {
	return r == RoleCivilian || r == RoleDetective || r == RoleDoctor
}

// Player represents a player in a room
type Player struct {
	ID    string
	Name  string
	Role  Role
	Alive bool
}
