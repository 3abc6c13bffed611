package nft

import (
	"github.com/x-xyz/nftdapp/domain"
)

// ScanMode selects which tokens an aggregation pass records
type ScanMode string

const (
	// ScanModeCatalog records every minted token, ownership not checked
	ScanModeCatalog ScanMode = "catalog"
	// ScanModeOwned records tokens owned by the connected wallet
	ScanModeOwned ScanMode = "owned"
	// ScanModeMarketplace records listed tokens only
	ScanModeMarketplace ScanMode = "marketplace"
)

var ScanModes = []ScanMode{ScanModeCatalog, ScanModeOwned, ScanModeMarketplace}

func (m ScanMode) IsValid() bool {
	switch m {
	case ScanModeCatalog, ScanModeOwned, ScanModeMarketplace:
		return true
	}
	return false
}

func ParseScanMode(s string) (ScanMode, error) {
	m := ScanMode(s)
	if !m.IsValid() {
		return "", domain.ErrBadParamInput
	}
	return m, nil
}
