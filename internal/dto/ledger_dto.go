package dto

// StockMovementResponse is one kardex row. ProductName is the snapshot taken
// at write time, not a join — renamed or deleted products keep their
// historical name here.
type StockMovementResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Kind        string `json:"kind"` // IN | OUT
	Reason      string `json:"reason"`
	Quantity    int    `json:"quantity"`
	StockBefore int    `json:"stock_before"`
	StockAfter  int    `json:"stock_after"`
	CreatedAt   string `json:"created_at"`
}

type AuditEntryResponse struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
	CreatedAt string `json:"created_at"`
}
