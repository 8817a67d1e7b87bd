package models

// User is a player profile. SkillLevel is a free-text rating such as "3.5".
// No endpoint reads or writes users yet; the table exists for matchmaking.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	SkillLevel string `json:"skill_level"`
}
