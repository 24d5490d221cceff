package pages

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nfrund/hireboard/internal/notify"
	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type stat struct {
	label string
	value string
	href  string
}

// Dashboard shows the marketplace totals and the latest console activity.
// A failed count load replaces the cards with loadErr's text.
func Dashboard(c resources.Counts, loadErr error, recent []notify.Notice) g.Node {
	stats := []stat{
		{"Users", components.Count(c.Users), "/admin/users"},
		{"Service Providers", components.Count(c.ServiceProviders), "/admin/service-providers"},
		{"Direct Orders", components.Count(c.DirectOrders), DirectOrdersPath},
		{"Online Orders", components.Count(c.OnlineOrders), EmergencyOrdersPath},
		{"Restaurants", components.Count(c.Restaurants), ""},
		{"New Tasks", components.Count(c.NewTasks), ""},
		{"COD Collection", components.Money(c.CODCollection), ""},
		{"Online Collection", components.Money(c.OnlineCollection), ""},
	}
	return g.Group{
		g.If(loadErr != nil, h.Div(h.Class("error-panel"), g.Attr("role", "alert"), h.P(g.Text(components.ErrorText(loadErr))))),
		g.If(loadErr == nil, h.Div(h.Class("stats"), g.Map(stats, func(s stat) g.Node {
			body := g.Group{h.Span(h.Class("stat-label"), g.Text(s.label)), h.Strong(h.Class("stat-value"), g.Text(s.value))}
			if s.href == "" {
				return h.Div(h.Class("stat"), body)
			}
			return h.A(h.Class("stat"), h.Href(s.href), body)
		}))),
		h.Section(h.Class("card"),
			h.H2(g.Text("Recent activity")),
			activity(recent),
		),
	}
}

func activity(recent []notify.Notice) g.Node {
	if len(recent) == 0 {
		return h.P(h.Class("muted"), g.Text("Nothing yet."))
	}
	return h.Ul(h.Class("feed"), g.Map(recent, func(n notify.Notice) g.Node {
		return h.Li(h.Class("feed-"+string(n.Level)),
			h.Span(h.Class("feed-view"), g.Text(n.View)),
			g.Text(" "+n.Text+" "),
			g.El("time", g.Attr("datetime", n.At.Format(time.RFC3339)), g.Text(humanize.Time(n.At))),
		)
	}))
}
