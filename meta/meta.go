// meta/meta.go
package meta

// ROWS defines the default board height.
const ROWS = 6

// COLS defines the default board width.
const COLS = 9

// PLAYERS defines the default number of seats.
const PLAYERS = 2

// MAX_TURNS caps a game before it is declared without a winner.
const MAX_TURNS = 500

// GAMES defines the number of games per experiment matchup.
const GAMES = 10
