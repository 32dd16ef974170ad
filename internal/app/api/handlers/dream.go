package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dreamdecode/backend/internal/app/service/dream"
	"github.com/dreamdecode/backend/pkg/response"
)

// @Summary      Submit a dream
// @Description  Generates a teaser and creates a pending dream record. A valid referral code halves the quoted price.
// @Tags         Dream
// @Accept       json
// @Produce      json
// @Param        request body dream.SubmitRequest true "Dream submission"
// @Success      200  {object}  dream.SubmitResult
// @Failure      400  {object}  response.Failure
// @Router       /submit-dream [post]
func ApiSubmitDream(mgr dream.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dream.SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		res, err := mgr.Submit(c.Request.Context(), &req)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary      Look up a referral code
// @Description  Returns the referrer's name, a teaser preview, and the discount terms.
// @Tags         Dream
// @Produce      json
// @Param        code path string true "Referral code"
// @Success      200  {object}  dream.ReferralInfo
// @Failure      404  {object}  response.Failure
// @Router       /referral/{code} [get]
func ApiLookupReferral(mgr dream.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := mgr.LookupReferral(c.Request.Context(), c.Param("code"))
		if err != nil {
			if errors.Is(err, dream.ErrReferralNotFound) {
				response.NotFound(c, err.Error())
				return
			}
			response.BadRequest(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

type createCheckoutReq struct {
	DreamID string `json:"dream_id" binding:"required"`
}

// @Summary      Create a checkout session
// @Description  Opens a hosted checkout session for the dream's price tier and returns the redirect URL.
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body createCheckoutReq true "Checkout request"
// @Success      200  {object}  dream.CheckoutResult
// @Failure      400  {object}  response.Failure
// @Failure      404  {object}  response.Failure
// @Router       /create-checkout-session [post]
func ApiCreateCheckoutSession(mgr dream.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCheckoutReq
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		res, err := mgr.CreateCheckout(c.Request.Context(), req.DreamID)
		if err != nil {
			if errors.Is(err, dream.ErrDreamNotFound) {
				response.NotFound(c, err.Error())
				return
			}
			response.BadRequest(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

type verifyPaymentReq struct {
	SessionID string `json:"session_id" binding:"required"`
	DreamID   string `json:"dream_id" binding:"required"`
}

// @Summary      Verify a payment
// @Description  Checks the checkout session; on first confirmation generates the full report, marks the dream paid, and schedules delivery.
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body verifyPaymentReq true "Verification request"
// @Success      200  {object}  dream.VerifyResult
// @Failure      400  {object}  response.Failure
// @Failure      404  {object}  response.Failure
// @Router       /verify-payment [post]
func ApiVerifyPayment(mgr dream.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req verifyPaymentReq
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		res, err := mgr.VerifyPayment(c.Request.Context(), req.SessionID, req.DreamID)
		if err != nil {
			if errors.Is(err, dream.ErrDreamNotFound) {
				response.NotFound(c, err.Error())
				return
			}
			response.BadRequest(c, err.Error())
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary      Download the report PDF
// @Description  Regenerates the PDF from the stored report. Only reachable for paid dreams.
// @Tags         Dream
// @Produce      application/pdf
// @Param        dream_id path string true "Dream id"
// @Success      200  {file}  binary
// @Failure      404  {object}  response.Failure
// @Router       /download-pdf/{dream_id} [get]
func ApiDownloadPDF(mgr dream.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := mgr.RenderDocument(c.Request.Context(), c.Param("dream_id"))
		if err != nil {
			if errors.Is(err, dream.ErrReportNotFound) || errors.Is(err, dream.ErrDreamNotFound) {
				response.NotFound(c, dream.ErrReportNotFound.Error())
				return
			}
			response.BadRequest(c, err.Error())
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
		c.Data(http.StatusOK, "application/pdf", doc.Content)
	}
}

func RegisterDreamRoutes(r gin.IRouter, mgr dream.Manager) {
	r.POST("/submit-dream", ApiSubmitDream(mgr))
	r.GET("/referral/:code", ApiLookupReferral(mgr))
	r.POST("/create-checkout-session", ApiCreateCheckoutSession(mgr))
	r.POST("/verify-payment", ApiVerifyPayment(mgr))
	r.GET("/download-pdf/:dream_id", ApiDownloadPDF(mgr))
}
