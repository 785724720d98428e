package echoServer

import (
	"booklending/app/echoServer/controller/auth"
	"booklending/app/echoServer/controller/book"
	"booklending/app/echoServer/controller/loan"
	"booklending/app/echoServer/controller/member"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth      *auth.Controller
	Book      *book.Controller
	Member    *member.Controller
	Loan      *loan.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/staff/register", c.Auth.Register)
	pub.POST("/staff/login", c.Auth.Login)

	pub.GET("/books", c.Book.Search)
	pub.GET("/books/:isbn", c.Book.Detail)
	pub.GET("/books/:isbn/availability", c.Book.Availability)

	pub.POST("/loans/borrow", c.Loan.Borrow)
	pub.POST("/loans/return", c.Loan.Return)
	pub.GET("/members/:id/loans", c.Loan.History)
	pub.GET("/members/:id/fine", c.Loan.Fine)
	pub.GET("/members/:id", c.Member.Get)

	// Staff only
	staff := e.Group("/v1")
	staff.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization:Bearer ",
	}))
	staff.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			tok, ok := ctx.Get("user").(*jwt.Token)
			if !ok || tok == nil {
				return echo.NewHTTPError(401, "unauthenticated")
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(401, "unauthenticated")
			}
			sub, ok := claims["sub"].(float64)
			if !ok {
				return echo.NewHTTPError(401, "unauthenticated")
			}
			ctx.Set("staff_id", int64(sub))
			return next(ctx)
		}
	})

	staff.POST("/books", c.Book.Add)
	staff.DELETE("/books/:isbn", c.Book.Remove)
	staff.POST("/members", c.Member.Register)
	staff.PATCH("/members/:id/active", c.Member.SetActive)
}
