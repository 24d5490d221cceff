package resources

import (
	"context"
	"net/http"

	"github.com/nfrund/hireboard/internal/listing"
	"github.com/tidwall/gjson"
)

const (
	feesEndpoint   = "api/getAllPlatformFees"
	feeUpsertPoint = "api/platform-fee"
)

// HiringTypes are the fee kinds the API accepts.
var HiringTypes = []string{"direct", "bidding", "emergency"}

// Fee is the platform fee charged for one hiring type.
type Fee struct {
	Type string
	Fee  float64
}

func mapFee(item gjson.Result) Fee {
	return Fee{
		Type: listing.Str(item, "type", listing.Unknown),
		Fee:  listing.Float(item, "fee"),
	}
}

func Fees(api API) listing.Loader[Fee] {
	return listing.Loader[Fee]{Client: api, Endpoint: feesEndpoint, Key: "data", Map: mapFee}
}

// SaveFee creates or replaces the fee of a hiring type.
func SaveFee(ctx context.Context, api API, f Fee) error {
	_, err := api.Send(ctx, http.MethodPost, feeUpsertPoint, map[string]any{"type": f.Type, "fee": f.Fee})
	return err
}
