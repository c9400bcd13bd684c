// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"profoli_backend/internals/configs"
	attendanceRoute "profoli_backend/internals/features/event/attendance/route"
	attendeeRoute "profoli_backend/internals/features/event/attendees/route"
	justificationRoute "profoli_backend/internals/features/event/justifications/route"
	themeRoute "profoli_backend/internals/features/event/themes/route"
	paymentRoute "profoli_backend/internals/features/finance/payments/route"
	transactionRoute "profoli_backend/internals/features/finance/transactions/route"
	reportRoute "profoli_backend/internals/features/reports/route"
	statsRoute "profoli_backend/internals/features/stats/route"
	authRoute "profoli_backend/internals/features/users/auth/route"
	authMiddleware "profoli_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	authRoute.AuthRoutes(public, db)
	attendeeRoute.AttendeePublicRoutes(public, db)
	themeRoute.ThemePublicRoutes(public, db)
	paymentRoute.PaymentPublicRoutes(public, db)

	// ===================== ADMIN (JWT) =====================
	log.Println("[INFO] Setting up ADMIN group (JWT)...")
	admin := app.Group("/api", authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret: configs.JWTSecret,
	}))

	authRoute.UserAdminRoutes(admin, db)
	attendeeRoute.AttendeeAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	justificationRoute.JustificationAdminRoutes(admin, db)
	themeRoute.ThemeAdminRoutes(admin, db)
	transactionRoute.TransactionAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
	statsRoute.StatsAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)
}
