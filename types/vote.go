// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"bytes"

	"github.com/luxfi/crypto/bls"
	"github.com/luxfi/ids"
)

// Signature pairs a voter's identity and public key with the raw signed
// payload bytes over a YacHash's SigningPayload.
type Signature struct {
	NodeID    ids.NodeID
	PublicKey *bls.PublicKey
	Bytes     []byte
}

// Equal compares two signatures byte-for-byte. Public keys are compared by
// their compressed representation since *bls.PublicKey is not comparable.
func (s Signature) Equal(other Signature) bool {
	if !bytes.Equal(s.Bytes, other.Bytes) {
		return false
	}
	if s.PublicKey == nil || other.PublicKey == nil {
		return s.PublicKey == other.PublicKey
	}
	return bytes.Equal(bls.PublicKeyToCompressedBytes(s.PublicKey), bls.PublicKeyToCompressedBytes(other.PublicKey))
}

// Vote is a YacHash plus the signature of the peer who cast it. Two votes
// are equal iff their hashes are equal and their signatures match
// byte-for-byte.
type Vote struct {
	Hash      YacHash
	Signature Signature
}

// Equal reports whether two votes carry the same hash and byte-identical signature.
func (v Vote) Equal(other Vote) bool {
	return v.Hash.Equal(other.Hash) && v.Signature.Equal(other.Signature)
}
