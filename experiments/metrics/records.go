package metrics

// AgentConfig identifies a searcher configuration under comparison.
type AgentConfig struct {
	ID         int
	Difficulty int
}

// GameRecord summarizes one finished game between two configs.
type GameRecord struct {
	ID     int
	Black  int // AgentConfig.ID
	White  int // AgentConfig.ID
	Winner string
	Score  string // "black-white"
	Moves  int
	Passes int
}

// MoveRecord captures one search invocation inside a game.
type MoveRecord struct {
	Game       int // GameRecord.ID
	Step       int
	Player     string
	Difficulty int
	Nodes      int
	Prunes     int
	ElapsedUs  int64
}
