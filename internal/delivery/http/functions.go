package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vendorflow/internal/jobs"
	"vendorflow/internal/models"
)

// GetDesigners
// @Summary getDesigners
// @Description Lists designers with their vendors and active vendor orders, one page at a time
// @ID get-designers
// @Accept json
// @Produce json
// @Param input body models.GetDesignersRequest false "page, sort (name-asc|name-desc), subpage (all|pending|sent), search (designer id)"
// @Success 200 {object} resultResponse{result=models.DesignersPage}
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/functions/getDesigners [post]
func (h *Handler) GetDesigners(c *gin.Context) {
	var req models.GetDesignersRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, err)
		return
	}
	page, err := h.svc.GetDesigners(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resultResponse{Result: page})
}

// LoadDesigner
// @Summary loadDesigner
// @Description Creates or updates a designer from the product catalog
// @ID load-designer
// @Accept json
// @Produce json
// @Param input body models.LoadDesignerRequest true "catalog designer"
// @Success 200 {object} resultResponse{result=models.LoadDesignerResult}
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/functions/loadDesigner [post]
func (h *Handler) LoadDesigner(c *gin.Context) {
	var req models.LoadDesignerRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, err)
		return
	}
	res, err := h.svc.LoadDesigner(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resultResponse{Result: res})
}

// SaveVendor
// @Summary saveVendor
// @Description Creates or edits a vendor of a designer; empty strings clear attributes
// @ID save-vendor
// @Accept json
// @Produce json
// @Param input body dataRequest[models.SaveVendorRequest] true "vendor fields"
// @Success 200 {object} resultResponse{result=models.DesignerRecord}
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/functions/saveVendor [post]
func (h *Handler) SaveVendor(c *gin.Context) {
	var req dataRequest[models.SaveVendorRequest]
	if err := bindBody(c, &req); err != nil {
		fail(c, err)
		return
	}
	rec, err := h.svc.SaveVendor(c.Request.Context(), req.Data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resultResponse{Result: rec})
}

// CreateVendorOrder
// @Summary createVendorOrder
// @Description Opens a vendor order for a designer's vendor
// @ID create-vendor-order
// @Accept json
// @Produce json
// @Param input body dataRequest[models.CreateVendorOrderRequest] true "order variants"
// @Success 200 {object} resultResponse{result=models.DesignerRecord}
// @Failure 400,404,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/functions/createVendorOrder [post]
func (h *Handler) CreateVendorOrder(c *gin.Context) {
	var req dataRequest[models.CreateVendorOrderRequest]
	if err := bindBody(c, &req); err != nil {
		fail(c, err)
		return
	}
	rec, err := h.svc.CreateVendorOrder(c.Request.Context(), req.Data)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resultResponse{Result: rec})
}

// SaveVendorOrder
// @Summary saveVendorOrder
// @Description Applies variant edits and receipts to a vendor order. Answers 202 with a job id when the work outlasts the soft timeout.
// @ID save-vendor-order
// @Accept json
// @Produce json
// @Param input body dataRequest[models.SaveVendorOrderRequest] true "variant changes"
// @Success 200 {object} resultResponse{result=models.DesignerRecord}
// @Success 202 {object} pendingResponse
// @Failure 400,404,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/functions/saveVendorOrder [post]
func (h *Handler) SaveVendorOrder(c *gin.Context) {
	var req dataRequest[models.SaveVendorOrderRequest]
	if err := bindBody(c, &req); err != nil {
		fail(c, err)
		return
	}
	h.runDeferred(c, "saveVendorOrder", func(ctx context.Context) (any, error) {
		return h.svc.SaveVendorOrder(ctx, req.Data)
	})
}

// SendVendorOrder
// @Summary sendVendorOrder
// @Description Emails a vendor order to its vendor. Rejections are listed in result.errors. Answers 202 with a job id when the work outlasts the soft timeout.
// @ID send-vendor-order
// @Accept json
// @Produce json
// @Param input body dataRequest[models.SendVendorOrderRequest] true "order to send"
// @Success 200 {object} resultResponse{result=models.SendVendorOrderResult}
// @Success 202 {object} pendingResponse
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/functions/sendVendorOrder [post]
func (h *Handler) SendVendorOrder(c *gin.Context) {
	var req dataRequest[models.SendVendorOrderRequest]
	if err := bindBody(c, &req); err != nil {
		fail(c, err)
		return
	}
	h.runDeferred(c, "sendVendorOrder", func(ctx context.Context) (any, error) {
		return h.svc.SendVendorOrder(ctx, req.Data)
	})
}

// runDeferred answers with the job result if it finishes within the soft
// timeout, otherwise with 202 and the job id to poll.
func (h *Handler) runDeferred(c *gin.Context, name string, fn jobs.Func) {
	handle, err := h.jobs.Start(c.Request.Context(), name, fn)
	if err != nil {
		fail(c, err)
		return
	}

	job, ok := handle.Wait(c.Request.Context(), h.softTimeout)
	if !ok {
		c.JSON(http.StatusAccepted, pendingResponse{
			JobID:   handle.ID,
			Status:  string(jobs.StatusPending),
			Message: "still processing",
		})
		return
	}
	if job.Status == jobs.StatusFailed {
		fail(c, handle.Err())
		return
	}
	c.JSON(http.StatusOK, resultResponse{Result: job.Result})
}

// GetDesigner
// @Summary GetDesigner
// @Description Returns one designer with vendors, active orders and their variants
// @ID get-designer
// @Produce json
// @Param designerId path int true "numeric designer id"
// @Success 200 {object} resultResponse{result=models.DesignerRecord}
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/designers/{designerId} [get]
func (h *Handler) GetDesigner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("designerId"))
	if err != nil || id <= 0 {
		newErrorResponse(c, http.StatusBadRequest, "invalid designer id")
		return
	}
	rec, err := h.svc.GetDesigner(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resultResponse{Result: rec})
}

// GetJob
// @Summary GetJob
// @Description Polls a deferred saveVendorOrder/sendVendorOrder job
// @ID get-job
// @Produce json
// @Param id path string true "job id"
// @Success 200 {object} jobs.Job
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/jobs/{id} [get]
func (h *Handler) GetJob(c *gin.Context) {
	job, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			newErrorResponse(c, http.StatusNotFound, "job not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, job)
}
