package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/nfrund/hireboard/internal/listing"
	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/internal/table"
	"github.com/spf13/cobra"
)

// sheet is one printable page of a collection.
type sheet struct {
	header []string
	rows   [][]string
	pager  table.Pager
}

type lister func(ctx context.Context, api resources.API, page, size int) (sheet, error)

// inMemory loads the whole collection once and slices the requested page.
func inMemory[R any](load func(resources.API) listing.Loader[R], header []string, cells func(R) []string) lister {
	return func(ctx context.Context, api resources.API, page, size int) (sheet, error) {
		res, err := load(api).Load(ctx, listing.Query{})
		if err != nil {
			return sheet{}, err
		}
		p := table.Pager{PageSize: size, TotalItems: len(res.Rows)}
		p.Page = p.Clamp(page)
		out := sheet{header: header, pager: p}
		for _, r := range table.Slice(res.Rows, p) {
			out.rows = append(out.rows, cells(r))
		}
		return out, nil
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func accountCells(a resources.Account) []string {
	return []string{a.ID, a.FullName, a.Location, a.Mobile, a.Joined, yesNo(a.Verified), yesNo(a.Active)}
}

var accountHeader = []string{"ID", "NAME", "LOCATION", "PHONE", "JOINED", "VERIFIED", "ACTIVE"}

var listers = map[string]lister{
	"users":             inMemory(resources.Users, accountHeader, accountCells),
	"service-providers": inMemory(resources.Providers, accountHeader, accountCells),
	"platform-fees": inMemory(resources.Fees, []string{"TYPE", "FEE"}, func(f resources.Fee) []string {
		return []string{f.Type, money(f.Fee)}
	}),
	"direct-orders": inMemory(resources.DirectOrders,
		[]string{"ID", "ORDER", "CUSTOMER", "PROVIDER", "TOTAL", "PAYMENT", "STATUS", "CREATED"},
		func(o resources.DirectOrder) []string {
			return []string{o.ID, o.OrderID, o.Customer, o.Provider, money(o.Total), o.PaymentStatus, o.HireStatus, o.Created}
		}),
	"emergency-orders": inMemory(resources.EmergencyOrders,
		[]string{"ID", "ORDER", "CUSTOMER", "PROVIDER", "TOTAL", "METHOD", "STATUS", "CREATED"},
		func(o resources.EmergencyOrder) []string {
			return []string{o.ID, o.OrderID, o.Customer, o.Provider, money(o.Total), o.PaymentMethod, o.OrderStatus, o.Created}
		}),
	"categories": func(ctx context.Context, api resources.API, page, size int) (sheet, error) {
		if page < 1 {
			page = 1
		}
		res, err := resources.CategoryPage(ctx, api, listing.Query{Page: page, Limit: size})
		if err != nil {
			return sheet{}, err
		}
		out := sheet{
			header: []string{"ID", "NAME", "SUBCATEGORIES"},
			pager:  table.Pager{Page: page, PageSize: size, TotalItems: res.Total},
		}
		for _, c := range res.Rows {
			out.rows = append(out.rows, []string{c.ID, c.Name, strconv.Itoa(c.Subcategories)})
		}
		return out, nil
	},
}

func resourceNames() []string {
	names := make([]string, 0, len(listers))
	for name := range listers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	listPage int
	listSize int
)

var listCmd = &cobra.Command{
	Use:       "list <resource>",
	Short:     "Print one page of a collection",
	Long:      "Print one page of a collection. Resources: " + strings.Join(resourceNames(), ", "),
	Args:      cobra.ExactArgs(1),
	ValidArgs: resourceNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, ok := listers[args[0]]
		if !ok {
			return fmt.Errorf("unknown resource %q, want one of: %s", args[0], strings.Join(resourceNames(), ", "))
		}
		if listSize < 1 {
			return fmt.Errorf("--size must be positive")
		}

		api, ctx, cancel, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer cancel()

		s, err := list(ctx, api, listPage, listSize)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join(s.header, "\t"))
		for _, r := range s.rows {
			fmt.Fprintln(w, strings.Join(r, "\t"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if len(s.rows) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No records found.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d items)\n", s.pager.Page, s.pager.TotalPages(), s.pager.TotalItems)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page to print")
	listCmd.Flags().IntVar(&listSize, "size", 10, "rows per page")
	rootCmd.AddCommand(listCmd)
}
