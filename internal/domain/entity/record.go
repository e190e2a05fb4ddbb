package entity

import "time"

// Named is satisfied by every record kind that can be resolved by display name.
type Named interface {
	DisplayName() string
}

// Record is the stored envelope for a single document: business fields under
// "data", audit metadata under "others".
type Record[T any] struct {
	Data   T     `json:"data"`
	Others Audit `json:"others"`
}

// Audit carries the creator/editor metadata every stored document has.
type Audit struct {
	CreatedBy   string `json:"createdBy"`
	CreatedTime int64  `json:"createdTime"`
	EditedBy    string `json:"editedBy"`
	EditedTime  int64  `json:"editedTime"`
}

// NewAudit builds audit metadata for a document created and edited by the
// same actor at the same instant. Times are unix milliseconds.
func NewAudit(by string, at time.Time) Audit {
	ms := at.UnixMilli()

	return Audit{
		CreatedBy:   by,
		CreatedTime: ms,
		EditedBy:    by,
		EditedTime:  ms,
	}
}
