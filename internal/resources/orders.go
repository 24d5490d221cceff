package resources

import (
	"context"
	"strings"

	"github.com/nfrund/hireboard/internal/listing"
	"github.com/tidwall/gjson"
)

const (
	directOrdersEndpoint    = "api/direct-order/getAllDirectOrders"
	directOrderEndpoint     = "api/direct-order/getDirectOrderWithWorker/"
	emergencyOrdersEndpoint = "api/admin/getAllOnlineOrdersByRestaurant"
)

// Payment is one entry of a direct order's payment history.
type Payment struct {
	Amount      float64
	Description string
	Status      string
	Date        string
}

// DirectOrder is a direct hiring between a customer and a provider.
type DirectOrder struct {
	ID             string
	OrderID        string
	Customer       string
	Provider       string
	Total          float64
	Paid           float64
	Remaining      float64
	PaymentStatus  string
	HireStatus     string
	Created        string
	Title          string
	Description    string
	Address        string
	Deadline       string
	PaymentHistory []Payment
}

func mapPayments(item gjson.Result, path string) []Payment {
	var out []Payment
	item.Get(path).ForEach(func(_, p gjson.Result) bool {
		out = append(out, Payment{
			Amount:      listing.Float(p, "amount"),
			Description: listing.Str(p, "description", listing.NA),
			Status:      listing.Str(p, "status", listing.Unknown),
			Date:        listing.Date(p, "date", listing.NA),
		})
		return true
	})
	return out
}

func mapDirectOrder(item gjson.Result) DirectOrder {
	remaining := listing.Float(item, "remaining_amount.amount")
	if remaining == 0 {
		remaining = listing.Float(item, "service_payment.remaining_amount")
	}
	return DirectOrder{
		ID:             idOf(item),
		OrderID:        listing.Str(item, "razorOrderIdPlatform", listing.NA),
		Customer:       listing.Str(item, "user_id.full_name", listing.Unknown),
		Provider:       listing.Str(item, "service_provider_id.full_name", listing.NA),
		Total:          listing.Float(item, "service_payment.total_expected"),
		Paid:           listing.Float(item, "service_payment.amount"),
		Remaining:      remaining,
		PaymentStatus:  listing.Str(item, "payment_status", listing.Unknown),
		HireStatus:     listing.Str(item, "hire_status", listing.Unknown),
		Created:        listing.Date(item, "createdAt", listing.NA),
		Title:          listing.Str(item, "title", listing.NA),
		Description:    listing.Str(item, "description", listing.NA),
		Address:        listing.Str(item, "address", listing.NA),
		Deadline:       listing.Date(item, "deadline", listing.NA),
		PaymentHistory: mapPayments(item, "service_payment.payment_history"),
	}
}

func DirectOrders(api API) listing.Loader[DirectOrder] {
	return listing.Loader[DirectOrder]{Client: api, Endpoint: directOrdersEndpoint, Key: "data", Map: mapDirectOrder}
}

// Worker is the worker a provider assigned to a direct order.
type Worker struct {
	Name         string
	Phone        string
	Address      string
	DOB          string
	VerifyStatus string
	Image        string
}

// OrderDetail is a direct order with its assigned worker, if any.
type OrderDetail struct {
	DirectOrder
	Worker *Worker
}

// AssignedWorker is the worker's name or the not-assigned text.
func (d OrderDetail) AssignedWorker() string {
	if d.Worker == nil {
		return listing.NotAssigned
	}
	return d.Worker.Name
}

// DirectOrderDetail loads one direct order.
func DirectOrderDetail(ctx context.Context, api API, id string) (OrderDetail, error) {
	data, err := listing.Object(ctx, api, directOrderEndpoint+id, "data")
	if err != nil {
		return OrderDetail{}, err
	}
	d := OrderDetail{DirectOrder: mapDirectOrder(data.Get("order"))}
	if w := data.Get("assignedWorker"); w.IsObject() {
		d.Worker = &Worker{
			Name:         listing.Str(w, "name", listing.NotAssigned),
			Phone:        listing.Str(w, "phone", listing.NA),
			Address:      listing.Str(w, "address", listing.NA),
			DOB:          listing.Date(w, "dob", listing.NA),
			VerifyStatus: listing.Str(w, "verifyStatus", listing.Unknown),
			Image:        listing.Media(api.BaseURL(), w, "image"),
		}
	}
	return d, nil
}

// OrderItem is one line of an emergency order.
type OrderItem struct {
	Name     string
	Quantity int64
	Price    float64
}

// EmergencyOrder is an online order placed for immediate service.
type EmergencyOrder struct {
	ID              string
	OrderID         string
	Customer        string
	Provider        string
	Total           float64
	PaymentMethod   string
	OrderStatus     string
	PaymentStatus   string
	Created         string
	ShippingAddress string
	Items           []OrderItem
	TotalPrice      float64
	Tax             float64
}

func mapEmergencyOrder(item gjson.Result) EmergencyOrder {
	o := EmergencyOrder{
		ID:              idOf(item),
		OrderID:         listing.Str(item, "orderId", listing.NA),
		Customer:        listing.Str(item, "user_id.full_name", listing.Unknown),
		Provider:        listing.Str(item, "restaurant_id.name", listing.NA),
		Total:           listing.Float(item, "totalAmount"),
		PaymentMethod:   listing.Str(item, "paymentMethod", listing.NA),
		OrderStatus:     listing.Str(item, "orderStatus", listing.Unknown),
		PaymentStatus:   listing.Str(item, "paymentStatus", listing.Unknown),
		Created:         listing.Date(item, "createdAt", listing.NA),
		ShippingAddress: address(item.Get("shippingAddress")),
		TotalPrice:      listing.Float(item, "totalPrice"),
		Tax:             listing.Float(item, "taxAmount"),
	}
	item.Get("items").ForEach(func(_, it gjson.Result) bool {
		o.Items = append(o.Items, OrderItem{
			Name:     listing.Str(it, "name", listing.NA),
			Quantity: listing.Int(it, "quantity"),
			Price:    listing.Float(it, "price"),
		})
		return true
	})
	return o
}

// address renders a shipping address given either as text or as an object
// of parts.
func address(v gjson.Result) string {
	if !v.IsObject() {
		return listing.Str(v, "@this", listing.NA)
	}
	var parts []string
	for _, key := range []string{"street", "address", "city", "state", "pincode", "zip"} {
		if s := listing.Str(v, key, ""); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return listing.NA
	}
	return strings.Join(parts, ", ")
}

// EmergencyOrders loads emergency orders. The endpoint returns a bare array.
func EmergencyOrders(api API) listing.Loader[EmergencyOrder] {
	return listing.Loader[EmergencyOrder]{Client: api, Endpoint: emergencyOrdersEndpoint, Key: "@this", Map: mapEmergencyOrder}
}
