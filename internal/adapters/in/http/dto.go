package http

import (
	"time"

	"quickcommerce/internal/core/application/usecases/queries"
)

// Request bodies.
type (
	// NewCustomer is the payload for registering a customer.
	NewCustomer struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}

	// NewPartner is the payload for registering a delivery partner.
	NewPartner struct {
		Name          string `json:"name"`
		Phone         string `json:"phone"`
		VehicleNumber string `json:"vehicle_number"`
	}

	// NewOrder is the payload for placing an order.
	NewOrder struct {
		CustomerID int64  `json:"customer_id"`
		ItemName   string `json:"item_name"`
	}

	// CancelOrderRequest optionally overrides the cancellation reason.
	CancelOrderRequest struct {
		Reason string `json:"reason"`
	}

	// PickUpOrderRequest identifies the partner collecting the order.
	PickUpOrderRequest struct {
		PartnerID int64 `json:"partner_id"`
	}

	// CompleteOrderRequest identifies the delivering partner and carries
	// an optional rating from the customer.
	CompleteOrderRequest struct {
		PartnerID int64 `json:"partner_id"`
		Rating    *int  `json:"rating,omitempty"`
	}

	// UpdatePartnerStatusRequest carries the target partner status.
	UpdatePartnerStatusRequest struct {
		Status string `json:"status"`
	}
)

// Response bodies.
type (
	// Customer is the customer representation returned by the API.
	Customer struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}

	// Partner is the delivery partner representation returned by the API.
	Partner struct {
		ID              int64   `json:"id"`
		Name            string  `json:"name"`
		Phone           string  `json:"phone"`
		VehicleNumber   string  `json:"vehicle_number"`
		Status          string  `json:"status"`
		CurrentOrderID  *int64  `json:"current_order_id,omitempty"`
		TotalDeliveries int     `json:"total_deliveries"`
		AverageRating   float64 `json:"average_rating"`
	}

	// Order is the order representation returned by the API.
	Order struct {
		ID                int64      `json:"id"`
		CustomerID        int64      `json:"customer_id"`
		ItemName          string     `json:"item_name"`
		Status            string     `json:"status"`
		AssignedPartnerID *int64     `json:"assigned_partner_id,omitempty"`
		CreatedAt         time.Time  `json:"created_at"`
		PickedUpAt        *time.Time `json:"picked_up_at,omitempty"`
		DeliveredAt       *time.Time `json:"delivered_at,omitempty"`
	}

	// Error is the uniform error payload.
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
)

func toOrderDTO(response queries.GetOrderStatusQueryResponse) Order {
	return Order{
		ID:                response.ID,
		CustomerID:        response.CustomerID,
		ItemName:          response.ItemName,
		Status:            response.Status.String(),
		AssignedPartnerID: response.AssignedPartnerID,
		CreatedAt:         response.CreatedAt,
		PickedUpAt:        response.PickedUpAt,
		DeliveredAt:       response.DeliveredAt,
	}
}

func toPartnerDTO(response queries.GetPartnerStatusQueryResponse) Partner {
	return Partner{
		ID:              response.ID,
		Name:            response.Name,
		Phone:           response.Phone,
		VehicleNumber:   response.VehicleNumber,
		Status:          response.Status.String(),
		CurrentOrderID:  response.CurrentOrderID,
		TotalDeliveries: response.TotalDeliveries,
		AverageRating:   response.AverageRating,
	}
}
