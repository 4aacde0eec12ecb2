package http

import (
	"github.com/gin-gonic/gin"

	"krishimitra-backend/internal/model"
	"krishimitra-backend/pkg/response"
)

// Query godoc
// @Summary     Ask the farm advisor
// @Description Classifies the farmer's question and answers it from soil data, the crop index, and the weather forecast.
// @Tags        Advisory
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Farmer question"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Farmer or soil record not found"
// @Failure     422 {object} response.Resp "Crop not recognized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/advisory/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{
		AadhaarNo: req.AadhaarNo,
		RequestID: c.GetString(model.ContextKeyRequestID),
	}

	output, err := h.uc.Query(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Query: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newQueryResp(output))
}
