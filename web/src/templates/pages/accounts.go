package pages

import (
	"strings"

	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/internal/table"
	"github.com/nfrund/hireboard/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// AccountKind selects one of the two account screens.
type AccountKind struct {
	Slug  string
	Title string
	// Verify adds the verification column and detail fields.
	Verify bool
}

var (
	Users     = AccountKind{Slug: "users", Title: "Users"}
	Providers = AccountKind{Slug: "service-providers", Title: "Service Providers", Verify: true}
)

// Path is the screen's route.
func (k AccountKind) Path() string { return "/admin/" + k.Slug }

// AccountTable describes the account table. busy reports rows with a
// toggle in flight and may be nil.
func AccountTable(k AccountKind, busy func(id string) bool) table.Spec[resources.Account] {
	spec := table.Spec[resources.Account]{
		ID:    k.Slug + "-table",
		RowID: func(a resources.Account) string { return a.ID },
		URL:   k.Path() + "/table",
		Empty: "No " + strings.ToLower(k.Title) + " found.",
	}
	toggle := func(a resources.Account, field string, on bool, onLabel, offLabel string) g.Node {
		return components.Toggle{
			URL:      k.Path() + "/" + a.ID + "/" + field,
			RowID:    spec.RowDOMID(a),
			On:       on,
			Busy:     busy != nil && busy(a.ID),
			OnLabel:  onLabel,
			OffLabel: offLabel,
		}.Node()
	}
	name := func(a resources.Account) string { return a.FullName }
	location := func(a resources.Account) string { return a.Location }
	joined := func(a resources.Account) string { return a.Joined }

	spec.Columns = []table.Column[resources.Account]{
		{Key: "sno", Header: "S.No", Cell: table.SerialCell[resources.Account]()},
		{Key: "profile_pic", Header: "Profile", Cell: func(a resources.Account, _ int) g.Node {
			return components.Avatar(a.ProfilePic, a.FullName)
		}},
		{Key: "full_name", Header: "Full Name", Cell: table.TextCell(name), Compare: table.ByText(name)},
		{Key: "location", Header: "Location", Cell: table.TextCell(location), Compare: table.ByText(location)},
		{Key: "phone", Header: "Mobile", Cell: table.TextCell(func(a resources.Account) string { return a.Mobile })},
		{Key: "createdAt", Header: "Joined", Cell: table.TextCell(joined), Compare: table.ByText(joined)},
		{Key: "referral_code", Header: "Referral Code", Cell: table.TextCell(func(a resources.Account) string { return a.ReferralCode })},
	}
	if k.Verify {
		spec.Columns = append(spec.Columns, table.Column[resources.Account]{
			Key:    "verified",
			Header: "Verified",
			Cell: func(a resources.Account, _ int) g.Node {
				return toggle(a, "verified", a.Verified, "Verified", "Unverified")
			},
			Compare: table.ByBool(func(a resources.Account) bool { return a.Verified }),
		})
	}
	spec.Columns = append(spec.Columns,
		table.Column[resources.Account]{
			Key:    "active",
			Header: "Status",
			Cell: func(a resources.Account, _ int) g.Node {
				return toggle(a, "active", a.Active, "Active", "Blocked")
			},
			Compare: table.ByBool(func(a resources.Account) bool { return a.Active }),
		},
		table.Column[resources.Account]{
			Key:    "actions",
			Header: "Actions",
			Cell: func(a resources.Account, _ int) g.Node {
				return components.DetailButton(k.Path() + "/" + a.ID)
			},
		},
	)
	return spec
}

// AccountDetail is the modal body of one account.
func AccountDetail(k AccountKind, a resources.Account) g.Node {
	fields := []components.Field{
		{Label: "Full Name", Value: a.FullName},
		{Label: "Mobile", Value: a.Mobile},
		{Label: "Location", Value: a.Location},
		{Label: "Current Location", Value: a.CurrentLocation},
		{Label: "Full Address", Value: a.FullAddress},
		{Label: "Landmark", Value: a.Landmark},
		{Label: "Colony", Value: a.ColonyName},
		{Label: "Gali Number", Value: a.GaliNumber},
		{Label: "Referral Code", Value: a.ReferralCode},
		{Label: "Active", Value: components.YesNo(a.Active)},
	}
	if k.Verify {
		fields = append(fields,
			components.Field{Label: "Verified", Value: components.YesNo(a.Verified)},
			components.Field{Label: "Skill", Value: a.Skill},
			components.Field{Label: "Rating", Value: a.Rating},
			components.Field{Label: "Total Reviews", Value: components.Count(a.TotalReviews)},
		)
	}
	fields = append(fields,
		components.Field{Label: "Created At", Value: a.CreatedAt},
		components.Field{Label: "Updated At", Value: a.UpdatedAt},
	)

	return components.Modal(a.FullName, k.Path()+"/detail",
		h.Div(h.Class("detail-head"), components.Avatar(a.ProfilePic, a.FullName)),
		components.Fields(fields...),
		g.If(k.Verify && len(a.WorkImages) > 0, g.Group{
			h.H3(g.Text("Work")),
			components.Gallery("Work sample", a.WorkImages),
		}),
		g.If(k.Verify, reviews(a.Reviews)),
	)
}

func reviews(list []resources.Review) g.Node {
	if len(list) == 0 {
		return h.P(h.Class("muted"), g.Text("No reviews yet."))
	}
	return g.Group{
		h.H3(g.Text("Reviews")),
		h.Ul(h.Class("reviews"), g.Map(list, func(r resources.Review) g.Node {
			return h.Li(
				h.Strong(g.Text(r.Rating+" ★")),
				h.P(g.Text(r.Text)),
				components.Gallery("Review photo", r.Images),
			)
		})),
	}
}
