package handlers

import (
	"service-gestor/internal/domain"
	"service-gestor/internal/service/board"
)

func (r createCourierRequest) toModel() *domain.Courier {
	return &domain.Courier{
		Name:          r.Name,
		Phone:         r.Phone,
		TransportType: r.TransportType,
	}
}

func (r updateCourierRequest) toModel(id int64) domain.PartialCourierUpdate {
	return domain.PartialCourierUpdate{
		ID:            id,
		Name:          r.Name,
		Phone:         r.Phone,
		TransportType: r.TransportType,
	}
}

func courierToResponse(c domain.Courier) courierDTO {
	return courierDTO{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		Status:          c.Status,
		TransportType:   c.TransportType,
		CurrentOrderID:  c.CurrentOrderID,
		TotalDeliveries: c.TotalDeliveries,
	}
}

func couriersToResponse(list []domain.Courier) []courierDTO {
	out := make([]courierDTO, 0, len(list))
	for _, c := range list {
		out = append(out, courierToResponse(c))
	}
	return out
}

func orderToResponse(o domain.Order) orderDTO {
	items := o.Items
	if items == nil {
		items = []domain.Item{}
	}
	return orderDTO{
		ID:                     o.ID,
		OrderCode:              o.Code,
		Status:                 o.Status,
		CreatedDate:            o.CreatedDate,
		AcceptedAt:             o.AcceptedAt,
		ReadyAt:                o.ReadyAt,
		DeliveredAt:            o.DeliveredAt,
		PrepTime:               o.PrepTime,
		DeliveryMethod:         o.DeliveryMethod,
		PickupCode:             o.PickupCode,
		DeliveryCode:           o.DeliveryCode,
		EntregadorID:           o.EntregadorID,
		StoreLatitude:          o.StoreLatitude,
		StoreLongitude:         o.StoreLongitude,
		Items:                  items,
		Subtotal:               o.Subtotal,
		DeliveryFee:            o.DeliveryFee,
		Discount:               o.Discount,
		Total:                  o.Total,
		PaymentMethod:          o.PaymentMethod,
		RejectionReason:        o.RejectionReason,
		InternalNotes:          o.InternalNotes,
		Priority:               o.Priority,
		CustomerChangeRequest:  o.CustomerChangeRequest,
		CustomerChangeStatus:   o.CustomerChangeStatus,
		CustomerChangeResponse: o.CustomerChangeResponse,
	}
}

// boardToResponse always lists every column, empty ones included.
func boardToResponse(v board.View) boardDTO {
	out := boardDTO{Columns: make(map[domain.Column][]cardDTO, len(domain.Columns()))}
	for _, col := range domain.Columns() {
		cards := make([]cardDTO, 0, len(v[col]))
		for _, c := range v[col] {
			cards = append(cards, cardDTO{
				Order:         orderToResponse(c.Order),
				UnknownStatus: c.UnknownStatus,
				InFlight:      c.InFlight,
			})
		}
		out.Columns[col] = cards
	}
	return out
}

func (r moveRequest) toModel() domain.Move {
	return domain.Move{
		OrderID: r.OrderID,
		From:    domain.Position{Column: r.From.Column, Index: r.From.Index},
		To:      domain.Position{Column: r.To.Column, Index: r.To.Index},
	}
}

func logsToResponse(list []domain.OrderLog) []orderLogDTO {
	out := make([]orderLogDTO, 0, len(list))
	for _, l := range list {
		out = append(out, orderLogDTO{
			ID:        l.ID,
			OrderID:   l.OrderID,
			Action:    l.Action,
			OldStatus: l.OldStatus,
			NewStatus: l.NewStatus,
			UserEmail: l.UserEmail,
			Timestamp: l.Timestamp,
			Details:   l.Details,
		})
	}
	return out
}

func prefsToResponse(p domain.Preferences) preferencesDTO {
	return preferencesDTO(p)
}

func (r preferencesDTO) toModel() domain.Preferences {
	return domain.Preferences(r)
}

func (r annotateRequest) toModel() domain.OrderAnnotations {
	return domain.OrderAnnotations{Priority: r.Priority, InternalNotes: r.InternalNotes}
}

func (r changeAnswerRequest) toModel() domain.ChangeAnswer {
	return domain.ChangeAnswer{Status: r.Status, Response: r.Response}
}
