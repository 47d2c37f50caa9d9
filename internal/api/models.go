package api

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"min=6,max=50,password"`
	FullName string `json:"full_name" validate:"min=1,max=50"`
}

// AuthenticateRequest defines the payload for the login endpoint.
type AuthenticateRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccessTokenResponse defines the successful response for the login endpoint.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// CreateCategoryRequest defines the payload for category creation.
type CreateCategoryRequest struct {
	Name        string `json:"name"        validate:"min=1,max=50"`
	Description string `json:"description" validate:"min=1,max=5000"`
}

// CategorySummaryResponse is one element of the category listing.
type CategorySummaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryDetailResponse is the single-category response body.
type CategoryDetailResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateItemRequest defines the payload for item creation.
type CreateItemRequest struct {
	Name        string `json:"name"        validate:"min=1,max=50"`
	Description string `json:"description" validate:"min=1,max=5000"`
}

// UpdateItemRequest defines the payload for item update.
// Only the description is mutable.
type UpdateItemRequest struct {
	Description string `json:"description" validate:"min=1,max=5000"`
}

// ItemDetailResponse is the single-item response body.
type ItemDetailResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ItemSummaryResponse is one element of the paginated item listing.
type ItemSummaryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ItemBatchResponse is the paginated item listing envelope.
type ItemBatchResponse struct {
	TotalNumberOfItems int64                 `json:"total_number_of_items"`
	ItemsPerPage       int                   `json:"items_per_page"`
	Items              []ItemSummaryResponse `json:"items"`
}

// CreatedResponse carries the generated id of a newly created resource.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
