package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat writes game records as JSON instead of text
	JSONFormat bool

	// OutputFilename is where records go (empty means OutputFile)
	OutputFilename string

	// ShowBoard prints the board before every move in interactive games
	ShowBoard bool

	// AddEvaluation adds the search value as a comment after computer moves
	AddEvaluation bool

	// KeepMoveNumbers writes "N." before each White move
	KeepMoveNumbers bool

	// MaxLineLength wraps move text in records
	MaxLineLength uint
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard:       true,
		KeepMoveNumbers: true,
		MaxLineLength:   80,
	}
}
