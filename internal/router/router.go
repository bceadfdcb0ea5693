package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"changex/internal/config"
	"changex/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	transactionHandler *handler.TransactionHandler,
	fournisseurHandler *handler.FournisseurHandler,
	beneficiaireHandler *handler.BeneficiaireHandler,
	calculHandler *handler.CalculHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	// the dashboard frontend is served from another origin
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Users
	e.POST("/save", userHandler.Save)
	e.POST("/login", userHandler.Login)
	e.GET("/user", userHandler.Lookup)

	// Transactions
	e.POST("/trans/add", transactionHandler.Add)
	e.PUT("/trans/update/:id", transactionHandler.Update)
	e.DELETE("/trans/delete/:id", transactionHandler.Delete)
	e.GET("/trans/all", transactionHandler.All)

	// Fournisseurs
	e.POST("/add/four", fournisseurHandler.Add)
	e.GET("/all/four", fournisseurHandler.All)
	e.GET("/all/four/nom", fournisseurHandler.Names)
	e.GET("/four/:id", fournisseurHandler.Get)
	e.PUT("/update/four/:id", fournisseurHandler.Update)
	e.DELETE("/delete/four/:id", fournisseurHandler.Delete)

	// Beneficiaires
	e.POST("/add/benef", beneficiaireHandler.Add)
	e.GET("/all/benef", beneficiaireHandler.All)
	e.GET("/benef/:id", beneficiaireHandler.Get)
	e.PUT("/update/benef/:id", beneficiaireHandler.Update)
	e.DELETE("/delete/benef/:id", beneficiaireHandler.Delete)

	// Dashboard
	e.GET("/total/fr", statsHandler.TotalFournisseurs)
	e.GET("/total/tr", statsHandler.TotalTransactions)
	e.GET("/total/bn", statsHandler.TotalBeneficiaires)

	// Calculator
	e.POST("/calculer", calculHandler.Calculer)

	// Secured routes (require the JWT issued on login)
	secured := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, _ := token.Claims.(jwt.MapClaims)
		return c.JSON(http.StatusOK, echo.Map{"token_claims": claims})
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
