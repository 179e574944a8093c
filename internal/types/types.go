// internal/types/types.go
package types

// EntityID identifies a player, enemy or bullet for the lifetime of a world.
type EntityID uint64
