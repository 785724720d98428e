package book

type AddBookReq struct {
	ISBN            string  `json:"isbn" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	Author          string  `json:"author" validate:"required"`
	TotalCopies     int     `json:"total_copies" validate:"required,gt=0"`
	AvailableCopies int     `json:"available_copies" validate:"gte=0"`
	Price           float64 `json:"price" validate:"gte=0"`
}
