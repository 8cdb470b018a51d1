// meta/meta.go
package meta

// MAX_PLIES bounds a self-play game. Every ply fills a square so a real game
// never reaches it.
const MAX_PLIES = 128

// DEFAULT_DIFFICULTY is the level used when none is configured.
const DEFAULT_DIFFICULTY = "medium"

// DEFAULT_SEED seeds the random baseline agent.
const DEFAULT_SEED = 1

// GAMES_PER_MATCHUP is the number of games played for each experiment match-up.
const GAMES_PER_MATCHUP = 10
