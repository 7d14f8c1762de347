package model

// Service is a catalog entry
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceInr    int    `json:"priceInr"`
}

// BeforeAfterItem is a gallery entry
type BeforeAfterItem struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	BeforeImageURL string `json:"beforeImageUrl"`
	AfterImageURL  string `json:"afterImageUrl"`
}
