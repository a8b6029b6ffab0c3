// Package dto defines the request and response shapes of the v1 API.
package dto

// UploadRequest is the JSON form of a dataset upload. Clients may instead
// POST the CSV bytes directly with a text/csv content type.
type UploadRequest struct {
	CSV string `json:"csv"`
}

// LayerInfo is one construction layer with its assigned chart colour.
type LayerInfo struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// MonthInfo is one completion month: the sortable key plus a display label.
type MonthInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// DatasetResponse summarises the loaded dataset and the filterable
// dimensions derived from it.
type DatasetResponse struct {
	RecordCount int         `json:"record_count"`
	RouteExtent int         `json:"route_extent"`
	Layers      []LayerInfo `json:"layers"`
	Bills       []string    `json:"bills"`
	Months      []MonthInfo `json:"months"`
}
