package dto

import (
	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/entity"
)

// CreateMoneyFlowRequest is the body of POST /money_flows
type CreateMoneyFlowRequest struct {
	Title        string     `json:"title" binding:"required,max=30"`
	Amount       *int64     `json:"amount" binding:"required"`
	OccurredDate *Timestamp `json:"occurred_date" binding:"required"`
	Kind         string     `json:"kind"`
}

// UpdateMoneyFlowRequest is the body of PUT /money_flows.
// Every field is replaced; an omitted kind falls back to the default.
type UpdateMoneyFlowRequest struct {
	ID           uint64     `json:"id" binding:"required"`
	Title        string     `json:"title" binding:"required,max=30"`
	Amount       *int64     `json:"amount" binding:"required"`
	OccurredDate *Timestamp `json:"occurred_date" binding:"required"`
	Kind         string     `json:"kind"`
}

// DeleteMoneyFlowRequest is the body of DELETE /money_flows
type DeleteMoneyFlowRequest struct {
	ID uint64 `json:"id" binding:"required"`
}

// ListMoneyFlowsQuery holds the query string of GET /money_flows
type ListMoneyFlowsQuery struct {
	Kind string `form:"kind"`
}

// MoneyFlowResponse is the wire shape of a money flow
type MoneyFlowResponse struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Amount       int64     `json:"amount"`
	OccurredDate Timestamp `json:"occurred_date"`
	Kind         string    `json:"kind"`
}

// NewMoneyFlowResponse converts an entity to its wire shape
func NewMoneyFlowResponse(mf *entity.MoneyFlow) MoneyFlowResponse {
	return MoneyFlowResponse{
		ID:           mf.ID,
		Title:        mf.Title,
		Amount:       mf.Amount,
		OccurredDate: NewTimestamp(mf.OccurredDate),
		Kind:         mf.Kind.String(),
	}
}

// NewMoneyFlowListResponse converts entities to their wire shape. The result is never nil.
func NewMoneyFlowListResponse(moneyFlows []*entity.MoneyFlow) []MoneyFlowResponse {
	result := make([]MoneyFlowResponse, 0, len(moneyFlows))
	for _, mf := range moneyFlows {
		result = append(result, NewMoneyFlowResponse(mf))
	}
	return result
}
