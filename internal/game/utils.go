package game

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"

	"github.com/ozodbekm/mafia-online/internal/store"
)

// GenerateRoomCode creates a random room code
func GenerateRoomCode() string {
	code := make([]byte, RoomCodeLength)
	for i := range RoomCodeLength {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(RoomCodeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = RoomCodeChars[rand.Intn(len(RoomCodeChars))]
			continue
		}
		code[i] = RoomCodeChars[n.Int64()]
	}
	return string(code)
}

// UniqueRoomCode generates a room code not already present in the store
func UniqueRoomCode(rooms *store.RoomStore) string {
	for {
		code := GenerateRoomCode()
		if !rooms.Exists(code) {
			return code
		}
	}
}
