package gameinfo

// Config holds configuration for the game-data API client.
type Config struct {
	// BaseURL is the root of the gameinfo API.
	BaseURL string `mapstructure:"base_url" default:"https://gameinfo.albiononline.com/api/gameinfo"`
	// TimeoutSeconds bounds every individual API request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}
