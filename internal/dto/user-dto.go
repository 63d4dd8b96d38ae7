package dto

// UserSignup is the POST /users request body. Fields are pointers so
// validation can tell an absent/null field from an empty string. Any
// client-supplied "inactive" flag is dropped by the parser: new
// accounts always start inactive.
type UserSignup struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}
