package admin

import (
	stdsync "sync"

	"github.com/gofiber/fiber/v2"
	"github.com/oolongtea/coursehub-sync/config"
	"github.com/oolongtea/coursehub-sync/services/sync"
	"github.com/oolongtea/coursehub-sync/utils/response"
	"github.com/oolongtea/coursehub-sync/utils/validation"
)

// SyncHandler exposes the manual catalog refresh endpoint.
type SyncHandler struct {
	syncService *sync.Service
	env         *config.EnviornmentVariable
	validator   *validation.Validator

	// running serializes refreshes; a full refresh wipes whole terms, so
	// two at once would race on the same rows.
	running stdsync.Mutex
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncService *sync.Service, env *config.EnviornmentVariable) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
		env:         env,
		validator:   validation.NewValidator(),
	}
}

// TriggerSyncRequest represents the request body for a manual sync
type TriggerSyncRequest struct {
	CalendarID int    `json:"calendarId" validate:"required,min=1"`
	Depth      int    `json:"depth" validate:"omitempty,min=1,max=20"`
	Cookie     string `json:"onesystemCookie" validate:"omitempty,max=4096"`
}

// TriggerSync handles POST /api/admin/sync
func (h *SyncHandler) TriggerSync(c *fiber.Ctx) error {
	var req TriggerSyncRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	depth := req.Depth
	if depth == 0 {
		depth = 1
	}

	// The session cookie can come with the request or from the environment.
	cookie := validation.SanitizeString(req.Cookie)
	if cookie == "" {
		cookie = h.env.ONESYSTEM_COOKIE
	}
	if cookie == "" {
		return response.BadRequest(c, "No upstream session cookie available")
	}

	if !h.running.TryLock() {
		return response.Conflict(c, "A sync is already running")
	}
	defer h.running.Unlock()

	result, err := h.syncService.Run(c.Context(), cookie, req.CalendarID, depth)
	if err != nil {
		if result != nil {
			return response.ErrorWithDetails(c, fiber.StatusBadGateway,
				"Sync failed", "SYNC_FAILED", err.Error())
		}
		return response.BadRequest(c, err.Error())
	}

	return response.SuccessWithMessage(c, "Sync completed", result)
}
