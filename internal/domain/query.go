package domain

// ListMeta is the pagination block attached to list responses. Total always
// reflects the full filtered set, not the returned page.
type ListMeta struct {
	Page      int64 `json:"page"`
	Limit     int64 `json:"limit"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"totalPage"`
}
