// meta/meta.go
package meta

// MAX_PIP is the highest pip value on a tile face.
const MAX_PIP = 6

// SET_SIZE is the number of unique tiles in a double-six set.
const SET_SIZE = (MAX_PIP + 1) * (MAX_PIP + 2) / 2

// HAND_SIZE is the number of tiles dealt to each side.
const HAND_SIZE = 7

// MAX_GAMES caps a single experiment run.
const MAX_GAMES = 100000

// MAX_ACTIONS bounds the player actions a simulated game may take.
const MAX_ACTIONS = 300
