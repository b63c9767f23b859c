package core

import (
	"crypto/sha256"
	"encoding/binary"
)

// GenesisHashSeed anchors the hash chain. The first envelope's prev_hash
// is SHA-256 of this string, so two deployments with different seeds can
// never splice each other's event logs.
const GenesisHashSeed = "RangeLiq:genesis:v1"

// StateHasher maintains the running hash chain over committed envelopes:
// state_hash[N] = SHA-256(state_hash[N-1] || sequence || state_digest).
// Not safe for concurrent use; only the core loop touches it.
type StateHasher struct {
	prevHash [32]byte
}

func NewStateHasher() *StateHasher {
	return &StateHasher{prevHash: sha256.Sum256([]byte(GenesisHashSeed))}
}

// ComputeHash folds the next envelope into the chain and advances the tip.
// Callers that need the link to the previous envelope must read
// GetPrevHash before calling this.
func (h *StateHasher) ComputeHash(sequence int64, stateDigest []byte) [32]byte {
	var seqBuf [8]byte
	binary.LittleEndian.PutUint64(seqBuf[:], uint64(sequence))

	hasher := sha256.New()
	hasher.Write(h.prevHash[:])
	hasher.Write(seqBuf[:])
	hasher.Write(stateDigest)
	copy(h.prevHash[:], hasher.Sum(nil))

	return h.prevHash
}

// GetPrevHash returns the current chain tip.
func (h *StateHasher) GetPrevHash() [32]byte {
	return h.prevHash
}

// SetPrevHash restores the chain tip during snapshot recovery.
func (h *StateHasher) SetPrevHash(hash [32]byte) {
	h.prevHash = hash
}
