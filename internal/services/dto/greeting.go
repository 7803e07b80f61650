package dto

// GreetingRequest - вход greeting. Text обязателен, но может быть пустой строкой.
type GreetingRequest struct {
	Text *string `json:"text" form:"text" validate:"required"`
}
