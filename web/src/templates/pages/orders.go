package pages

import (
	"github.com/nfrund/hireboard/internal/listing"
	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/internal/table"
	"github.com/nfrund/hireboard/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	DirectOrdersPath    = "/admin/direct-orders"
	EmergencyOrdersPath = "/admin/emergency-orders"
)

func DirectOrderTable() table.Spec[resources.DirectOrder] {
	type o = resources.DirectOrder
	orderID := func(r o) string { return r.OrderID }
	customer := func(r o) string { return r.Customer }
	provider := func(r o) string { return r.Provider }
	created := func(r o) string { return r.Created }
	money := func(v func(o) float64) func(o, int) g.Node {
		return func(r o, _ int) g.Node { return g.Text(components.Money(v(r))) }
	}
	total := func(r o) float64 { return r.Total }
	return table.Spec[o]{
		ID:    "direct-orders-table",
		RowID: func(r o) string { return r.ID },
		URL:   DirectOrdersPath + "/table",
		Empty: "No direct hiring orders found.",
		Columns: []table.Column[o]{
			{Key: "sno", Header: "S.No", Cell: table.SerialCell[o]()},
			{Key: "order_id", Header: "Order ID", Cell: table.TextCell(orderID), Compare: table.ByText(orderID)},
			{Key: "customer", Header: "Customer", Cell: table.TextCell(customer), Compare: table.ByText(customer)},
			{Key: "provider", Header: "Service Provider", Cell: table.TextCell(provider), Compare: table.ByText(provider)},
			{Key: "total", Header: "Total", Cell: money(total), Compare: table.ByNumber(total)},
			{Key: "paid", Header: "Paid", Cell: money(func(r o) float64 { return r.Paid })},
			{Key: "remaining", Header: "Remaining", Cell: money(func(r o) float64 { return r.Remaining })},
			{Key: "payment_status", Header: "Payment", Cell: func(r o, _ int) g.Node { return components.Badge(r.PaymentStatus) }},
			{Key: "hire_status", Header: "Hire Status", Cell: func(r o, _ int) g.Node { return components.Badge(r.HireStatus) }},
			{Key: "createdAt", Header: "Created", Cell: table.TextCell(created), Compare: table.ByText(created)},
			{Key: "actions", Header: "Actions", Cell: func(r o, _ int) g.Node {
				return h.Div(h.Class("actions"),
					components.DetailButton(DirectOrdersPath+"/"+r.ID+"/summary"),
					h.A(h.Href(DirectOrdersPath+"/"+r.ID), g.Text("Open")),
				)
			}},
		},
	}
}

// DirectOrderModal summarises a loaded direct order.
func DirectOrderModal(r resources.DirectOrder) g.Node {
	return components.Modal("Order "+r.OrderID, DirectOrdersPath+"/detail",
		directOrderFields(r),
		payments(r.PaymentHistory),
		h.P(h.A(h.Href(DirectOrdersPath+"/"+r.ID), g.Text("Open full order"))),
	)
}

func directOrderFields(r resources.DirectOrder) g.Node {
	return components.Fields(
		components.Field{Label: "Title", Value: r.Title},
		components.Field{Label: "Description", Value: r.Description},
		components.Field{Label: "Customer", Value: r.Customer},
		components.Field{Label: "Service Provider", Value: r.Provider},
		components.Field{Label: "Address", Value: r.Address},
		components.Field{Label: "Deadline", Value: r.Deadline},
		components.Field{Label: "Created", Value: r.Created},
		components.Field{Label: "Hire Status", Value: r.HireStatus},
		components.Field{Label: "Payment Status", Value: r.PaymentStatus},
		components.Field{Label: "Total", Value: components.Money(r.Total)},
		components.Field{Label: "Paid", Value: components.Money(r.Paid)},
		components.Field{Label: "Remaining", Value: components.Money(r.Remaining)},
	)
}

func payments(list []resources.Payment) g.Node {
	if len(list) == 0 {
		return h.P(h.Class("muted"), g.Text("No payments recorded."))
	}
	return g.Group{
		h.H3(g.Text("Payment History")),
		h.Table(h.Class("data-table"),
			h.THead(h.Tr(h.Th(g.Text("Date")), h.Th(g.Text("Amount")), h.Th(g.Text("Description")), h.Th(g.Text("Status")))),
			h.TBody(g.Map(list, func(p resources.Payment) g.Node {
				return h.Tr(
					h.Td(g.Text(p.Date)),
					h.Td(g.Text(components.Money(p.Amount))),
					h.Td(g.Text(p.Description)),
					h.Td(components.Badge(p.Status)),
				)
			})),
		),
	}
}

// DirectOrderPage is the full order with its assigned worker.
func DirectOrderPage(d resources.OrderDetail) g.Node {
	return g.Group{
		h.P(h.A(h.Href(DirectOrdersPath), g.Text("← Back to direct hiring"))),
		h.Section(h.Class("card"), h.H2(g.Text("Order "+d.OrderID)), directOrderFields(d.DirectOrder)),
		h.Section(h.Class("card"), h.H2(g.Text("Assigned Worker")), worker(d)),
		h.Section(h.Class("card"), payments(d.PaymentHistory)),
	}
}

func worker(d resources.OrderDetail) g.Node {
	w := d.Worker
	if w == nil {
		return h.P(h.Class("muted"), g.Text(listing.NotAssigned))
	}
	return g.Group{
		components.Avatar(w.Image, w.Name),
		components.Fields(
			components.Field{Label: "Name", Value: w.Name},
			components.Field{Label: "Phone", Value: w.Phone},
			components.Field{Label: "Address", Value: w.Address},
			components.Field{Label: "Date of Birth", Value: w.DOB},
			components.Field{Label: "Verification", Value: w.VerifyStatus},
		),
	}
}

func EmergencyOrderTable() table.Spec[resources.EmergencyOrder] {
	type o = resources.EmergencyOrder
	orderID := func(r o) string { return r.OrderID }
	customer := func(r o) string { return r.Customer }
	created := func(r o) string { return r.Created }
	total := func(r o) float64 { return r.Total }
	return table.Spec[o]{
		ID:    "emergency-orders-table",
		RowID: func(r o) string { return r.ID },
		URL:   EmergencyOrdersPath + "/table",
		Empty: "No emergency orders found.",
		Columns: []table.Column[o]{
			{Key: "sno", Header: "S.No", Cell: table.SerialCell[o]()},
			{Key: "orderId", Header: "Order ID", Cell: table.TextCell(orderID), Compare: table.ByText(orderID)},
			{Key: "customer", Header: "Customer", Cell: table.TextCell(customer), Compare: table.ByText(customer)},
			{Key: "provider", Header: "Service Provider", Cell: table.TextCell(func(r o) string { return r.Provider })},
			{Key: "totalAmount", Header: "Total", Cell: table.TextCell(func(r o) string { return components.Money(r.Total) }), Compare: table.ByNumber(total)},
			{Key: "paymentMethod", Header: "Payment Method", Cell: table.TextCell(func(r o) string { return r.PaymentMethod })},
			{Key: "orderStatus", Header: "Order Status", Cell: func(r o, _ int) g.Node { return components.Badge(r.OrderStatus) }},
			{Key: "paymentStatus", Header: "Payment Status", Cell: func(r o, _ int) g.Node { return components.Badge(r.PaymentStatus) }},
			{Key: "createdAt", Header: "Created", Cell: table.TextCell(created), Compare: table.ByText(created)},
			{Key: "actions", Header: "Actions", Cell: func(r o, _ int) g.Node {
				return components.DetailButton(EmergencyOrdersPath + "/" + r.ID)
			}},
		},
	}
}

func EmergencyOrderModal(r resources.EmergencyOrder) g.Node {
	return components.Modal("Order "+r.OrderID, EmergencyOrdersPath+"/detail",
		components.Fields(
			components.Field{Label: "Customer", Value: r.Customer},
			components.Field{Label: "Service Provider", Value: r.Provider},
			components.Field{Label: "Shipping Address", Value: r.ShippingAddress},
			components.Field{Label: "Payment Method", Value: r.PaymentMethod},
			components.Field{Label: "Order Status", Value: r.OrderStatus},
			components.Field{Label: "Payment Status", Value: r.PaymentStatus},
			components.Field{Label: "Created", Value: r.Created},
		),
		h.H3(g.Text("Items")),
		g.If(len(r.Items) == 0, h.P(h.Class("muted"), g.Text("No items."))),
		g.If(len(r.Items) > 0, h.Table(h.Class("data-table"),
			h.THead(h.Tr(h.Th(g.Text("Item")), h.Th(g.Text("Qty")), h.Th(g.Text("Price")))),
			h.TBody(g.Map(r.Items, func(it resources.OrderItem) g.Node {
				return h.Tr(
					h.Td(g.Text(it.Name)),
					h.Td(g.Text(components.Count(it.Quantity))),
					h.Td(g.Text(components.Money(it.Price))),
				)
			})),
		)),
		components.Fields(
			components.Field{Label: "Subtotal", Value: components.Money(r.TotalPrice)},
			components.Field{Label: "Tax", Value: components.Money(r.Tax)},
			components.Field{Label: "Total", Value: components.Money(r.Total)},
		),
	)
}
