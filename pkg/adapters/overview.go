package adapters

import (
	"github.com/de-tools/market-atlas/pkg/models/domain"
	"github.com/de-tools/market-atlas/pkg/models/store"
)

func MapStoreOverviewToDomain(o store.Overview) domain.PriceOverview {
	return domain.PriceOverview{
		Success:     o.Success,
		LowestPrice: o.LowestPrice,
		MedianPrice: o.MedianPrice,
		Volume:      o.Volume,
	}
}
