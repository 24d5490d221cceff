package resources

import (
	"context"

	"github.com/nfrund/hireboard/internal/listing"
)

const dashboardEndpoint = "api/admin/adminAllDashboardCount"

// Counts are the dashboard totals.
type Counts struct {
	Users            int64
	ServiceProviders int64
	Restaurants      int64
	DirectOrders     int64
	OnlineOrders     int64
	CODCollection    float64
	OnlineCollection float64
	NewTasks         int64
}

// DashboardCounts loads the totals. Missing counters are 0.
func DashboardCounts(ctx context.Context, api API) (Counts, error) {
	data, err := listing.Object(ctx, api, dashboardEndpoint, "data")
	if err != nil {
		return Counts{}, err
	}
	return Counts{
		Users:            listing.Int(data, "totalUsers"),
		ServiceProviders: listing.Int(data, "totalSeller"),
		Restaurants:      listing.Int(data, "totalRestaurants"),
		DirectOrders:     listing.Int(data, "totalDirectOrder"),
		OnlineOrders:     listing.Int(data, "onlineOrders"),
		CODCollection:    listing.Float(data, "codCollection"),
		OnlineCollection: listing.Float(data, "onlineCollection"),
		NewTasks:         listing.Int(data, "newTasks"),
	}, nil
}
