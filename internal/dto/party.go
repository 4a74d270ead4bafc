package dto

import (
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest defines the data needed to register a customer or supplier.
type CreatePartyRequest struct {
	Kind    domain.PartyKind `json:"kind" binding:"required,oneof=CUSTOMER SUPPLIER"`
	Name    string           `json:"name" binding:"required"`
	Phone   string           `json:"phone"`
	Address string           `json:"address"`
	VATNo   string           `json:"vatNo"`
	Notes   string           `json:"notes"`
}

// UpdatePartyRequest defines the data allowed for updating a party.
// Pointers distinguish zero-value updates from fields not provided.
type UpdatePartyRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	VATNo   *string `json:"vatNo"`
	Notes   *string `json:"notes"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID       string           `json:"partyID"`
	Kind          domain.PartyKind `json:"kind"`
	Name          string           `json:"name"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address"`
	VATNo         string           `json:"vatNo"`
	Notes         string           `json:"notes"`
	IsActive      bool             `json:"isActive"`
	Balance       *decimal.Decimal `json:"balance,omitempty"` // Present when requested with ?withBalance=true
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToPartyResponse converts a domain.Party to a PartyResponse DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:       p.PartyID,
		Kind:          p.Kind,
		Name:          p.Name,
		Phone:         p.Phone,
		Address:       p.Address,
		VATNo:         p.VATNo,
		Notes:         p.Notes,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListPartyResponse converts a slice of domain.Party to response DTOs.
func ToListPartyResponse(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i := range parties {
		res[i] = ToPartyResponse(&parties[i])
	}
	return res
}

// ListPartiesParams defines query parameters for listing parties.
type ListPartiesParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}
