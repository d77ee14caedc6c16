package game

import "bitrush_backend/internal/domain"

const (
	// GridSize is the number of slots in a floating card collection.
	GridSize = 9
	// FreeSlots are unlocked from the start (positions 1..FreeSlots).
	FreeSlots = 3
	// GatewayPosition is the paid slot whose purchase opens the rest.
	GatewayPosition = 4
)

// SlotState describes where a floating card slot is in its lifecycle.
type SlotState int

const (
	SlotLocked SlotState = iota
	SlotUnlocked
	SlotClaimed
)

func (s SlotState) String() string {
	switch s {
	case SlotLocked:
		return "locked"
	case SlotUnlocked:
		return "unlocked"
	case SlotClaimed:
		return "claimed"
	}
	return "unknown"
}

// StateOf derives the slot state from the stored flags. A claimed flag wins
// over everything else.
func StateOf(fc domain.FloatingCard) SlotState {
	if fc.IsClaimed {
		return SlotClaimed
	}
	if fc.IsUnlocked {
		return SlotUnlocked
	}
	return SlotLocked
}

// CanClaim reports whether the slot's reward may be collected right now.
// Only an unlocked, unclaimed slot with a well-formed reward qualifies.
func CanClaim(fc domain.FloatingCard) error {
	if StateOf(fc) != SlotUnlocked {
		return ErrInvalidState
	}
	if !fc.Reward().WellFormed() {
		return ErrInvalidState
	}
	return nil
}

// CascadePositions lists the slots opened by a gateway purchase.
func CascadePositions() []int {
	out := make([]int, 0, GridSize-GatewayPosition)
	for p := GatewayPosition + 1; p <= GridSize; p++ {
		out = append(out, p)
	}
	return out
}
