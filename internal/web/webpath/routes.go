package webpath

const (
	Home       = "/"
	Today      = "/today"
	History    = "/history"
	Stats      = "/stats"
	Scoreboard = "/scoreboard"
	Players    = "/players"
	Ratings    = "/ratings"
	Metrics    = "/metrics"

	Api           = "/api"
	ApiPlayers    = Api + "/players"
	ApiPlayer     = Api + "/players/:id"
	ApiScores     = Api + "/scores"
	ApiHistory    = Api + "/history"
	ApiStats      = Api + "/stats"
	ApiScoreboard = Api + "/scoreboard"
	ApiRatings    = Api + "/ratings"
	ApiExport     = Api + "/export"
	ApiImport     = Api + "/import"
)

func Path() map[string]string {
	return map[string]string{
		"Home":       Home,
		"Today":      Today,
		"History":    History,
		"Stats":      Stats,
		"Scoreboard": Scoreboard,
		"Players":    Players,
		"Ratings":    Ratings,
		"Export":     ApiExport,
	}
}
