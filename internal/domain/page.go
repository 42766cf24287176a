package domain

// ListParams carries the optional limit/offset values from the HTTP layer to
// the repo layer. A zero value means "not set".
type ListParams struct {
	// Limit is the maximum number of rides to return.
	Limit int
	// Offset is the number of rides to skip. Only valid together with Limit.
	Offset int
}

// NewListParams builds a ListParams from optional HTTP query params.
// Nil pointers and values below 1 are treated as unset rather than as a
// page size (or offset) of zero.
func NewListParams(limit, offset *int) ListParams {
	var p ListParams
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
	}
	if offset != nil && *offset >= 1 {
		p.Offset = *offset
	}
	return p
}

// Validate rejects an offset that is not anchored to an explicit page size.
func (p ListParams) Validate() error {
	if p.Offset > 0 && p.Limit == 0 {
		return QueryError(MsgOffsetWithoutLimit)
	}
	return nil
}
