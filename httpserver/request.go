package httpserver

type AddContactRequest struct {
	Name  string `json:"name" validate:"required,min=1"`
	Phone string `json:"phone" validate:"required,phone"`
}

type ChangePhoneRequest struct {
	OldPhone string `json:"oldPhone" validate:"required,phone"`
	NewPhone string `json:"newPhone" validate:"required,phone"`
}

type SetBirthdayRequest struct {
	Birthday string `json:"birthday" validate:"required,birthday"`
}
