package members

// registerInput is the body of POST /register.
type registerInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// updateQuery is the query string of PATCH /update. Empty role or status
// means "leave unchanged".
type updateQuery struct {
	Email              string `schema:"email" validate:"required"`
	Role               string `schema:"role"`
	SubscriptionStatus string `schema:"subscription_status"`
}
