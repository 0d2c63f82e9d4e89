package sel

const (
	Errors = "#errors"

	NewPlayerName   = "#name"
	NewPlayerSubmit = "#add"
	PlayerList      = "#players"

	Date          = "#date"
	SubmitPlayer  = "#player"
	SubmitZip     = "#ZIP"
	SubmitSudoku  = "#MINI_SUDOKU"
	SubmitQueens  = "#QUEENS"
	SubmitSave    = "#save"
	Board         = "#board"
	BoardEmpty    = "#board-empty"
	RatingsTable  = "#ratings"
	ScoreboardSum = "#totals"
)
