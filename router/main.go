package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oolongtea/coursehub-sync/config"
	"github.com/oolongtea/coursehub-sync/database"
	"github.com/oolongtea/coursehub-sync/handlers"
	admin_handlers "github.com/oolongtea/coursehub-sync/handlers/admin"
	catalog_handlers "github.com/oolongtea/coursehub-sync/handlers/catalog"
	catalog_service "github.com/oolongtea/coursehub-sync/services/catalog"
	sync_service "github.com/oolongtea/coursehub-sync/services/sync"
	"github.com/oolongtea/coursehub-sync/utils/cache"
	"github.com/oolongtea/coursehub-sync/utils/middleware"
)

func SetupRoutes(app *fiber.App, store *database.GORMStore, env *config.EnviornmentVariable, syncService *sync_service.Service) {
	db := store.DB()

	// Initialize Redis cache; the catalog works without it, just slower.
	var redisCache *cache.RedisCache
	if env.REDIS_URL != "" {
		var err error
		redisCache, err = cache.NewRedisCache(env.REDIS_URL)
		if err != nil {
			log.Printf("Redis unavailable, continuing without cache: %v", err)
			redisCache = nil
		}
	}

	catalogService := catalog_service.NewService(db, redisCache)

	catalogHandler := catalog_handlers.NewCatalogHandler(catalogService)
	syncHandler := admin_handlers.NewSyncHandler(syncService, env)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return handlers.HandleCheckHealth(c, store)
	})

	api := app.Group("/api")

	// Public catalog routes
	api.Get("/last-update", catalogHandler.LastUpdate)
	api.Get("/aliases/:system/:alias", catalogHandler.ResolveAlias)

	calendars := api.Group("/calendars")
	calendars.Get("/", catalogHandler.ListCalendars)
	calendars.Get("/:calendar_id/campuses", catalogHandler.ListCampuses)
	calendars.Get("/:calendar_id/faculties", catalogHandler.ListFaculties)
	calendars.Get("/:calendar_id/languages", catalogHandler.ListTeachingLanguages)
	calendars.Get("/:calendar_id/natures", catalogHandler.ListCourseNatures)
	calendars.Get("/:calendar_id/assessments", catalogHandler.ListAssessments)
	calendars.Get("/:calendar_id/grades", catalogHandler.ListGrades)
	calendars.Get("/:calendar_id/grades/:grade/majors", catalogHandler.ListMajorsByGrade)
	calendars.Get("/:calendar_id/majors/:major_id/classes", catalogHandler.ListClassesByMajor)
	calendars.Get("/:calendar_id/courses/:course_code/classes", catalogHandler.ListClassesByCourseCode)
	calendars.Get("/:calendar_id/natures/:label_id/classes", catalogHandler.ListClassesByNature)
	calendars.Get("/:calendar_id/search", catalogHandler.SearchCourses)
	calendars.Get("/:calendar_id/classes/by-time", catalogHandler.ListClassesByTime)

	// Admin routes, guarded by the shared secret and rate limited since a
	// sync is expensive for the upstream system too.
	admin := api.Group("/admin",
		middleware.RequireAdminSecret(env.ADMIN_SECRET),
		middleware.RateLimit(redisCache, "admin", 10, time.Minute),
	)
	admin.Post("/sync", syncHandler.TriggerSync)
}
