package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charity-events/fundraiser-api/internal/api/handler/v1/response"
	"github.com/charity-events/fundraiser-api/internal/domain"
)

type LiveFeed interface {
	Serve(w http.ResponseWriter, r *http.Request, kind domain.EventKind, eventID uint) error
}

type LiveHandler struct {
	feed LiveFeed
}

func NewLiveHandler(feed LiveFeed) *LiveHandler {
	return &LiveHandler{
		feed: feed,
	}
}

// HandleLive godoc
// @Summary      Follow an event live
// @Description  Upgrades to a websocket that receives an AllocationNotice after every purchase for the event.
// @Tags         events
// @Produce      json
// @Param        kind     path      string  true  "Event kind"  Enums(dinner, raffle, walk, concert)
// @Param        eventID  path      int     true  "Event ID"
// @Success      101      {object}  domain.AllocationNotice
// @Failure      400      {object}  response.Err
// @Router       /events/{kind}/{eventID}/live [get]
func (h *LiveHandler) HandleLive(ctx *gin.Context) {
	kind := domain.EventKind(ctx.Param("kind"))
	if !kind.Valid() {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("unknown event kind %q", kind)))
		return
	}

	id, ok := paramID(ctx, "eventID")
	if !ok {
		return
	}

	// The upgrader has already answered the request when Serve fails.
	if err := h.feed.Serve(ctx.Writer, ctx.Request, kind, id); err != nil {
		zap.L().Debug("live feed not established", zap.String("kind", string(kind)), zap.Uint("event_id", id), zap.Error(err))
	}
}
