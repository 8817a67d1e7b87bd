package services

import "github.com/AnshRaj112/courtmatch-backend/internal/models"

// AccountSettings returns the account page rows. They are fixed until sessions
// exist to tell callers apart.
func AccountSettings() []models.AccountSetting {
	return []models.AccountSetting{
		{ID: 1, Setting: "Name", CurrentData: "Rowley Favour"},
		{ID: 2, Setting: "Username", CurrentData: "ThisIsMyFavour"},
		{ID: 3, Setting: "Email", CurrentData: "example@gmail.com"},
	}
}
