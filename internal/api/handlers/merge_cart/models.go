package merge_cart

// MergeCartRequest HTTP request model, ids приходят из внешнего источника (например, из query)
type MergeCartRequest struct {
	ServiceIDs []string `json:"serviceIds"`
}
