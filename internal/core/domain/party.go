package domain

// PartyKind distinguishes the two sides of the shop's trade.
type PartyKind string

const (
	Customer PartyKind = "CUSTOMER"
	Supplier PartyKind = "SUPPLIER"
)

// IsValid reports whether k is a known party kind.
func (k PartyKind) IsValid() bool {
	return k == Customer || k == Supplier
}

// Party represents a customer or supplier of the shop.
type Party struct {
	PartyID  string    `json:"partyID"` // Primary Key (UUID)
	Kind     PartyKind `json:"kind"`    // CUSTOMER or SUPPLIER
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`    // Nullable
	Address  string    `json:"address"`  // Nullable
	VATNo    string    `json:"vatNo"`    // VAT registration number, nullable
	Notes    string    `json:"notes"`    // Nullable
	IsActive bool      `json:"isActive"` // Soft delete flag
	AuditFields
}
