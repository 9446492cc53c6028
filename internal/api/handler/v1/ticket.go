package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charity-events/fundraiser-api/internal/domain"
)

type TicketService interface {
	Redeem(ctx context.Context, reference string) (domain.TicketRecord, error)
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

// HandleRedeem godoc
// @Summary      Redeem a ticket
// @Description  Marks the ticket as used. A ticket can only be redeemed once.
// @Tags         tickets
// @Produce      json
// @Param        reference  path      string  true  "Ticket reference (UUID)"
// @Success      200        {object}  domain.TicketRecord
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /tickets/{reference}/redeem [post]
func (h *TicketHandler) HandleRedeem(ctx *gin.Context) {
	reference := ctx.Param("reference")

	record, err := h.svc.Redeem(ctx, reference)
	if err != nil {
		renderServiceErr(ctx, "HandleRedeem -> h.svc.Redeem", err, "ticket", "reference", reference)
		return
	}

	ctx.JSON(http.StatusOK, record)
}
