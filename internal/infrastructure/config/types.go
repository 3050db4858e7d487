package config

// DisplayConfig holds window and timing settings
type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// MenuConfig is the start-menu content
type MenuConfig struct {
	Title   string   `json:"title"`
	Entries []string `json:"entries"`
	Hint    string   `json:"hint"`
}

// CutsceneConfig is the intro script shown between the menu and the session
type CutsceneConfig struct {
	Lines          []string `json:"lines"`
	SecondsPerLine float64  `json:"secondsPerLine"`
}

// GameOverConfig is the failure-screen content
type GameOverConfig struct {
	Title string `json:"title"`
	Hint  string `json:"hint"`
}

// PaletteConfig maps visual roles to hex colors ("#rrggbb")
type PaletteConfig struct {
	Background string `json:"background"`
	Wall       string `json:"wall"`
	Hazard     string `json:"hazard"`
	Player     string `json:"player"`
}
