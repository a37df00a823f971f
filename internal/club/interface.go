package club

// Store persists the club roster so other tools reading the database see the
// same players and scores as the running service.
type Store interface {
	SyncRoster(roster *Roster) error
	GetAllPlayers() ([]Player, error)
	IsKnownPlayer(name string) bool
}
