package member

type RegisterMemberReq struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Category string `json:"category" validate:"required,oneof=STUDENT FACULTY GENERAL"`
}

type SetActiveReq struct {
	Active *bool `json:"active" validate:"required"`
}
