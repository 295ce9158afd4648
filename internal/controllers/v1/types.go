package v1

type URIID struct {
	ID uint64 `uri:"id" binding:"required"` // ID of the resource
}
