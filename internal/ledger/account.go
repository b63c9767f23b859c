package ledger

import (
	"github.com/google/uuid"
)

// AccountScope represents the top-level account namespace
type AccountScope uint8

const (
	AccountScopePosition AccountScope = iota
	AccountScopeSystem
	AccountScopeExternal
)

// AccountSubType represents the account purpose
type AccountSubType uint8

const (
	// Position sub-types
	SubTypeCollateralReserve AccountSubType = iota

	// System sub-types
	SubTypeSystemLPPool
	SubTypeSystemTakerCredits
	SubTypeSystemPenaltyCharges

	// External sub-types
	SubTypeExternalCollateralIn
	SubTypeExternalLiquidated
	SubTypeExternalOwnerReturn
)

// AssetID maps asset strings to numeric IDs for performance
type AssetID uint16

var (
	assetToID = map[string]AssetID{
		"USDC": 1,
		"USDT": 2,
		"BTC":  3,
		"ETH":  4,
	}
	idToAsset = map[AssetID]string{
		1: "USDC",
		2: "USDT",
		3: "BTC",
		4: "ETH",
	}
)

func GetAssetID(asset string) (AssetID, bool) {
	id, ok := assetToID[asset]
	return id, ok
}

func GetAssetName(id AssetID) (string, bool) {
	name, ok := idToAsset[id]
	return name, ok
}

// AccountKey is the in-memory key for balance tracking
type AccountKey struct {
	Scope    AccountScope
	EntityID [16]byte // position UUID, or name bytes for system/external accounts
	SubType  AccountSubType
	AssetID  AssetID
}

// NewPositionAccountKey creates the collateral-reserve key for a position
func NewPositionAccountKey(positionID uuid.UUID, assetID AssetID) AccountKey {
	return AccountKey{
		Scope:    AccountScopePosition,
		EntityID: positionID,
		SubType:  SubTypeCollateralReserve,
		AssetID:  assetID,
	}
}

// NewSystemAccountKey creates a key for system accounts
func NewSystemAccountKey(name string, subType AccountSubType, assetID AssetID) AccountKey {
	var entityID [16]byte
	copy(entityID[:], []byte(name))
	return AccountKey{
		Scope:    AccountScopeSystem,
		EntityID: entityID,
		SubType:  subType,
		AssetID:  assetID,
	}
}

// NewExternalAccountKey creates a key for external accounts
func NewExternalAccountKey(subType AccountSubType, assetID AssetID) AccountKey {
	var entityID [16]byte
	switch subType {
	case SubTypeExternalCollateralIn:
		copy(entityID[:], []byte("collateral_in"))
	case SubTypeExternalLiquidated:
		copy(entityID[:], []byte("liquidated"))
	case SubTypeExternalOwnerReturn:
		copy(entityID[:], []byte("owner_return"))
	}
	return AccountKey{
		Scope:    AccountScopeExternal,
		EntityID: entityID,
		SubType:  subType,
		AssetID:  assetID,
	}
}

// AccountPath returns the canonical string form of the key
func (k AccountKey) AccountPath() string {
	asset, _ := GetAssetName(k.AssetID)

	switch k.Scope {
	case AccountScopePosition:
		id, err := uuid.FromBytes(k.EntityID[:])
		if err != nil {
			return "position:invalid:" + asset
		}
		return "position:" + id.String() + ":reserve:" + asset

	case AccountScopeSystem:
		switch k.SubType {
		case SubTypeSystemLPPool:
			return "system:lp_pool:" + asset
		case SubTypeSystemTakerCredits:
			return "system:taker_credits:" + asset
		case SubTypeSystemPenaltyCharges:
			return "system:penalty_charges:" + asset
		}
		return "system:unknown:" + asset

	case AccountScopeExternal:
		switch k.SubType {
		case SubTypeExternalCollateralIn:
			return "external:collateral_in:" + asset
		case SubTypeExternalLiquidated:
			return "external:liquidated:" + asset
		case SubTypeExternalOwnerReturn:
			return "external:owner_return:" + asset
		}
		return "external:unknown:" + asset
	}

	return "unknown:" + asset
}
