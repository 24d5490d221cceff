package resources

import (
	"context"
	"net/http"

	"github.com/nfrund/hireboard/internal/listing"
	"github.com/tidwall/gjson"
)

const (
	usersEndpoint     = "api/admin/getAllUsers"
	providersEndpoint = "api/admin/getAllServiceProvider"
	statusEndpoint    = "api/admin/updateUserStatus"
	verifiedEndpoint  = "api/admin/updateUserverified"
)

// Review is one customer review of a service provider.
type Review struct {
	Rating string
	Text   string
	Images []string
}

// Account is a customer or service provider row. The detail fields are only
// shown in the modal.
type Account struct {
	ID           string
	ProfilePic   string
	FullName     string
	Location     string
	Mobile       string
	Joined       string
	ReferralCode string
	Verified     bool
	Active       bool

	CurrentLocation string
	FullAddress     string
	Landmark        string
	ColonyName      string
	GaliNumber      string
	Skill           string
	Rating          string
	TotalReviews    int64
	CreatedAt       string
	UpdatedAt       string
	WorkImages      []string
	Reviews         []Review
}

// MapAccount flattens a user record. Media paths are resolved against base.
func MapAccount(base string) func(gjson.Result) Account {
	return func(item gjson.Result) Account {
		a := Account{
			ID:           idOf(item),
			ProfilePic:   listing.Media(base, item, "profile_pic"),
			FullName:     listing.Str(item, "full_name", listing.NA),
			Location:     listing.Str(item, "location", listing.NA),
			Mobile:       listing.Str(item, "phone", listing.NA),
			Joined:       listing.Date(item, "createdAt", listing.NA),
			ReferralCode: listing.Str(item, "referral_code", listing.NA),
			Verified:     listing.Bool(item, "verified", false),
			Active:       listing.Bool(item, "active", true),

			CurrentLocation: listing.Str(item, "current_location", listing.NA),
			FullAddress:     listing.Str(item, "full_address", listing.NA),
			Landmark:        listing.Str(item, "landmark", listing.NA),
			ColonyName:      listing.Str(item, "colony_name", listing.NA),
			GaliNumber:      listing.Str(item, "gali_number", listing.NA),
			Skill:           listing.Str(item, "skill", listing.NA),
			Rating:          listing.Str(item, "rating", listing.NA),
			TotalReviews:    listing.Int(item, "totalReview"),
			CreatedAt:       listing.DateTime(item, "createdAt", listing.NA),
			UpdatedAt:       listing.DateTime(item, "updatedAt", listing.NA),
		}
		for _, p := range listing.Strings(item, "hiswork") {
			a.WorkImages = append(a.WorkImages, listing.ResolveMedia(base, p))
		}
		item.Get("rateAndReviews").ForEach(func(_, r gjson.Result) bool {
			rv := Review{
				Rating: listing.Str(r, "rating", listing.NA),
				Text:   listing.Str(r, "review", listing.NA),
			}
			for _, p := range listing.Strings(r, "images") {
				rv.Images = append(rv.Images, listing.ResolveMedia(base, p))
			}
			a.Reviews = append(a.Reviews, rv)
			return true
		})
		return a
	}
}

// Users loads the customer accounts.
func Users(api API) listing.Loader[Account] {
	return listing.Loader[Account]{Client: api, Endpoint: usersEndpoint, Key: "users", Map: MapAccount(api.BaseURL())}
}

// Providers loads the service provider accounts.
func Providers(api API) listing.Loader[Account] {
	return listing.Loader[Account]{Client: api, Endpoint: providersEndpoint, Key: "users", Map: MapAccount(api.BaseURL())}
}

// SetActive blocks or unblocks an account.
func SetActive(ctx context.Context, api API, id string, active bool) error {
	body, err := api.Send(ctx, http.MethodPatch, statusEndpoint, map[string]any{"userId": id, "active": active})
	if err != nil {
		return err
	}
	return requireSuccess(body)
}

// SetVerified marks a provider verified or not.
func SetVerified(ctx context.Context, api API, id string, verified bool) error {
	body, err := api.Send(ctx, http.MethodPatch, verifiedEndpoint, map[string]any{"userId": id, "verified": verified})
	if err != nil {
		return err
	}
	return requireSuccess(body)
}
