package entity

// UserLoginData is the claim set the token middleware puts on the request
// context. Accounts themselves are owned by the identity service.
type UserLoginData struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
