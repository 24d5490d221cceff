package resources

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nfrund/hireboard/internal/domain"
	"github.com/tidwall/gjson"
)

// ContentPage is one editable static page of the marketplace apps.
type ContentPage struct {
	Slug  string
	Title string
	get   string
	save  string
}

// ContentPages lists the editable pages in menu order.
var ContentPages = []ContentPage{
	{Slug: "about", Title: "About Us", get: "api/CompanyDetails/getAboutUs", save: "api/CompanyDetails/addAboutUs"},
	{Slug: "terms", Title: "Terms & Conditions", get: "api/CompanyDetails/getTermsConditions", save: "api/CompanyDetails/addTermsConditions"},
	{Slug: "privacy", Title: "Privacy Policy", get: "api/CompanyDetails/getPrivacyPolicy", save: "api/CompanyDetails/addPrivacyPolicy"},
}

// LookupContent finds a page by slug.
func LookupContent(slug string) (ContentPage, bool) {
	for _, p := range ContentPages {
		if p.Slug == slug {
			return p, true
		}
	}
	return ContentPage{}, false
}

// Load returns the stored HTML of the page. The response must carry a
// content string.
func (p ContentPage) Load(ctx context.Context, api API) (string, error) {
	body, err := api.Get(ctx, p.get, nil)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", p.get, err)
	}
	content := body.Get("content")
	if content.Type != gjson.String {
		return "", fmt.Errorf("load %s: %w: expected a content string", p.get, domain.ErrBadShape)
	}
	return content.Str, nil
}

// Save replaces the stored HTML of the page.
func (p ContentPage) Save(ctx context.Context, api API, content string) error {
	_, err := api.Send(ctx, http.MethodPost, p.save, map[string]string{"content": content})
	return err
}
