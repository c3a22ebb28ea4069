package response

import "packslip/internal/usecase"

type BulkInspectionResponse struct {
	Headers     []string               `json:"headers"`
	RowsCount   int                    `json:"rows_count"`
	OrdersCount int                    `json:"orders_count"`
	Orders      []usecase.OrderSummary `json:"orders"`
}

func FromBulkInspection(in usecase.BulkInspection) BulkInspectionResponse {
	orders := in.Orders
	if orders == nil {
		orders = []usecase.OrderSummary{}
	}
	return BulkInspectionResponse{
		Headers:     in.Headers,
		RowsCount:   in.RowsCount,
		OrdersCount: len(orders),
		Orders:      orders,
	}
}
