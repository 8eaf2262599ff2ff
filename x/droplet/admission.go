package droplet

import (
	"bytes"

	"github.com/dropletswap/bucketd/x/asset"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"golang.org/x/crypto/sha3"
)

// hashSize is the length of a keccak-256 digest.
const hashSize = 32

// Admission decides which assets a pool accepts.
type Admission interface {
	// VerifyMembership returns an error unless the asset belongs to the
	// collection described.
	VerifyMembership(db weave.ReadOnlyKVStore, assetID string, c *CollectionDescriptor, proof [][]byte) error
	// IsBanned returns true if the asset must never be accepted.
	IsBanned(db weave.ReadOnlyKVStore, assetID string) (bool, error)
}

// NewAdmission returns an admission service that checks collection
// membership using the asset registry or a whitelist merkle root, and bans
// assets listed in the configuration.
func NewAdmission(assets asset.Controller) Admission {
	return &admission{assets: assets}
}

type admission struct {
	assets asset.Controller
}

func (a *admission) VerifyMembership(db weave.ReadOnlyKVStore, assetID string, c *CollectionDescriptor, proof [][]byte) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "collection descriptor")
	}
	if c.CollectionID != "" {
		obj, err := a.assets.Asset(db, assetID)
		if err != nil {
			return errors.Wrap(err, "asset")
		}
		if obj.Collection != c.CollectionID {
			return errors.Wrapf(ErrCollectionVerification,
				"asset %q belongs to collection %q", assetID, obj.Collection)
		}
		return nil
	}
	if !VerifyProof(c.WhitelistRoot, WhitelistLeaf(assetID), proof) {
		return errors.Wrapf(ErrCollectionVerification, "asset %q is not whitelisted", assetID)
	}
	return nil
}

func (a *admission) IsBanned(db weave.ReadOnlyKVStore, assetID string) (bool, error) {
	conf, err := loadConf(db)
	if err != nil {
		return false, err
	}
	for _, id := range conf.BannedAssets {
		if id == assetID {
			return true, nil
		}
	}
	return false, nil
}

// WhitelistLeaf returns the merkle tree leaf representing given asset.
func WhitelistLeaf(assetID string) []byte {
	return keccak256([]byte(assetID))
}

// VerifyProof returns true if the leaf is part of the merkle tree with given
// root. Each proof element is a sibling hash on the path from the leaf to the
// root. Sibling pairs are hashed in sorted order, so the proof carries no
// position information.
func VerifyProof(root, leaf []byte, proof [][]byte) bool {
	computed := leaf
	for _, sibling := range proof {
		computed = hashPair(computed, sibling)
	}
	return bytes.Equal(computed, root)
}

// WhitelistRoot returns the root of the merkle tree built from given leaves,
// together with the proof of every leaf. A level with an odd number of nodes
// promotes its last node unchanged.
func WhitelistRoot(leaves [][]byte) (root []byte, proofs [][][]byte) {
	if len(leaves) == 0 {
		return nil, nil
	}
	proofs = make([][][]byte, len(leaves))
	// positions[i] is the index of the node leaf i is part of on the
	// current level.
	positions := make([]int, len(leaves))
	for i := range positions {
		positions[i] = i
	}
	level := leaves
	for len(level) > 1 {
		next := make([][]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			next = append(next, hashPair(level[i], level[i+1]))
		}
		for leaf, pos := range positions {
			sibling := pos ^ 1
			if sibling < len(level) {
				proofs[leaf] = append(proofs[leaf], level[sibling])
			}
			positions[leaf] = pos / 2
		}
		level = next
	}
	return level[0], proofs
}

func hashPair(a, b []byte) []byte {
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}
	return keccak256(a, b)
}

func keccak256(chunks ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		_, _ = h.Write(c)
	}
	return h.Sum(nil)
}
