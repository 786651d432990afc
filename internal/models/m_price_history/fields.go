package m_price_history

// Table name constant
const TableName = "price_history"

// Field name constants for type-safe database access
const (
	PropertyID = "property_id"
	HistoryID  = "history_id"
	OldAmount  = "old_amount"
	NewAmount  = "new_amount"
	Currency   = "currency"
	ChangedBy  = "changed_by"
	ChangedAt  = "changed_at"
)

// Columns lists every column in Data field order.
var Columns = []string{PropertyID, HistoryID, OldAmount, NewAmount, Currency, ChangedBy, ChangedAt}
