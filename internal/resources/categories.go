package resources

import (
	"context"
	"net/http"

	"github.com/nfrund/hireboard/internal/apiclient"
	"github.com/nfrund/hireboard/internal/domain"
	"github.com/nfrund/hireboard/internal/listing"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

const (
	categoriesEndpoint     = "api/adminWork-category"
	subcategoriesEndpoint  = "api/adminSubcategories/"
	categoryWriteEndpoint  = "api/work-category"
	subcategoryCreate      = "api/sub-category"
	subcategoryEndpoint    = "api/subcategories/"
	subcategoryConcurrency = 4
)

// Category is a work category row.
type Category struct {
	ID            string
	Name          string
	Image         string
	Subcategories int
}

// Subcategory belongs to one Category.
type Subcategory struct {
	ID    string
	Name  string
	Image string
}

func mapCategory(base string) func(gjson.Result) Category {
	return func(item gjson.Result) Category {
		return Category{
			ID:    idOf(item),
			Name:  listing.Str(item, "name", listing.NA),
			Image: listing.Media(base, item, "image"),
		}
	}
}

func mapSubcategory(base string) func(gjson.Result) Subcategory {
	return func(item gjson.Result) Subcategory {
		return Subcategory{
			ID:    idOf(item),
			Name:  listing.Str(item, "name", listing.NA),
			Image: listing.Media(base, item, "image"),
		}
	}
}

// Categories loads one server-side page of work categories.
func Categories(api API) listing.Loader[Category] {
	return listing.Loader[Category]{Client: api, Endpoint: categoriesEndpoint, Key: "data", TotalKey: "total", Map: mapCategory(api.BaseURL())}
}

// Subcategories lists the subcategories of category id.
func Subcategories(ctx context.Context, api API, id string) ([]Subcategory, error) {
	l := listing.Loader[Subcategory]{Client: api, Endpoint: subcategoriesEndpoint + id, Key: "data", Map: mapSubcategory(api.BaseURL())}
	page, err := l.Load(ctx, listing.Query{})
	if err != nil {
		return nil, err
	}
	return page.Rows, nil
}

// CategoryPage loads a page of categories and fills in each one's
// subcategory count. A count that cannot be fetched is shown as 0; only an
// authorization failure aborts the page.
func CategoryPage(ctx context.Context, api API, q listing.Query) (listing.Page[Category], error) {
	page, err := Categories(api).Load(ctx, q)
	if err != nil {
		return page, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(subcategoryConcurrency)
	for i := range page.Rows {
		g.Go(func() error {
			subs, err := Subcategories(gctx, api, page.Rows[i].ID)
			if err != nil {
				if domain.IsAuth(err) {
					return err
				}
				return nil
			}
			page.Rows[i].Subcategories = len(subs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return listing.Page[Category]{}, err
	}
	return page, nil
}

// CreateCategory posts a new category with its image.
func CreateCategory(ctx context.Context, api API, name string, image apiclient.Upload) error {
	_, err := api.SendMultipart(ctx, http.MethodPost, categoryWriteEndpoint, map[string]string{"name": name}, image)
	return err
}

// UpdateCategory renames a category and, when image is non-nil, replaces its
// image.
func UpdateCategory(ctx context.Context, api API, id, name string, image *apiclient.Upload) error {
	_, err := api.SendMultipart(ctx, http.MethodPut, categoryWriteEndpoint+"/"+id, map[string]string{"name": name}, uploads(image)...)
	return err
}

func DeleteCategory(ctx context.Context, api API, id string) error {
	_, err := api.Send(ctx, http.MethodDelete, categoryWriteEndpoint+"/"+id, nil)
	return err
}

// CreateSubcategory adds a subcategory to category.
func CreateSubcategory(ctx context.Context, api API, category, name string, image *apiclient.Upload) error {
	fields := map[string]string{"name": name, "category_id": category}
	_, err := api.SendMultipart(ctx, http.MethodPost, subcategoryCreate, fields, uploads(image)...)
	return err
}

func UpdateSubcategory(ctx context.Context, api API, id, name string, image *apiclient.Upload) error {
	_, err := api.SendMultipart(ctx, http.MethodPut, subcategoryEndpoint+id, map[string]string{"name": name}, uploads(image)...)
	return err
}

func DeleteSubcategory(ctx context.Context, api API, id string) error {
	_, err := api.Send(ctx, http.MethodDelete, subcategoryEndpoint+id, nil)
	return err
}

func uploads(u *apiclient.Upload) []apiclient.Upload {
	if u == nil {
		return nil
	}
	return []apiclient.Upload{*u}
}
