package models

// AccountSetting is one row of the account page. Field names are capitalised on
// the wire because the frontend table binds to them directly.
type AccountSetting struct {
	ID          int    `json:"id"`
	Setting     string `json:"Setting"`
	CurrentData string `json:"CurrentData"`
}
