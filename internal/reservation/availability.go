package reservation

// Availability holds the explicit availability flags per slot and player.
// Players without a flag are available.
type Availability map[Slot]map[string]bool

// IsAvailable reports whether player may play in slot.
func (a Availability) IsAvailable(slot Slot, player string) bool {
	available, ok := a[slot][player]
	return !ok || available
}

// Set records an explicit flag for player in slot.
func (a Availability) Set(slot Slot, player string, available bool) {
	if a[slot] == nil {
		a[slot] = make(map[string]bool)
	}
	a[slot][player] = available
}

// Toggle flips the flag of player in slot and returns the new value. The
// first toggle of an unflagged player marks them unavailable.
func (a Availability) Toggle(slot Slot, player string) bool {
	next := !a.IsAvailable(slot, player)
	a.Set(slot, player, next)
	return next
}
