package models

// Tender values observed on in-store orders. The order taker field on a
// source row is normalized (upper-cased, trimmed) before comparison.
const (
	TenderCash  = "CASH"
	TenderCard  = "CARD"
	TenderUPI   = "UPI"
	TenderOther = "INSTORE"
)

// Aggregator channel names as they appear on source rows.
const (
	ChannelZomato   = "Zomato"
	ChannelSwiggy   = "Swiggy"
	ChannelMagicPin = "MagicPin"
)

// InstoreTenders lists every tender that counts toward in-store sales.
var InstoreTenders = []string{TenderCash, TenderCard, TenderUPI, TenderOther}

// AggregatorChannels lists every delivery aggregator channel.
var AggregatorChannels = []string{ChannelZomato, ChannelSwiggy, ChannelMagicPin}

// IsInstoreTender reports whether the normalized tender counts as in-store.
func IsInstoreTender(tender string) bool {
	switch tender {
	case TenderCash, TenderCard, TenderUPI, TenderOther:
		return true
	}
	return false
}

// IsAggregatorChannel reports whether the channel is a delivery aggregator.
func IsAggregatorChannel(channel string) bool {
	switch channel {
	case ChannelZomato, ChannelSwiggy, ChannelMagicPin:
		return true
	}
	return false
}
