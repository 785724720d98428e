package loan

type BorrowReq struct {
	MemberID   string `json:"member_id" validate:"required"`
	ISBN       string `json:"isbn" validate:"required"`
	PeriodDays int    `json:"period_days" validate:"gte=0,lte=90"`
}

type ReturnReq struct {
	MemberID string `json:"member_id" validate:"required"`
	ISBN     string `json:"isbn" validate:"required"`
}
