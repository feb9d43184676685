package models

// Theme is the two-valued display preference, the only state allowed to
// outlive a session.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}
