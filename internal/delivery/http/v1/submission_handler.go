package v1

import (
	"errors"
	"net/http"

	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/internal/domain"
	"go-studio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewSubmissionHandler registers the public form routes. All five forms
// share one workflow; each route only binds its own body shape.
func NewSubmissionHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &SubmissionHandler{
		submissionUC: submissionUC,
	}

	public.POST("/contact", handler.SubmitContact)
	public.POST("/quote", handler.SubmitQuote)
	public.POST("/internship", handler.SubmitInternship)
	public.POST("/internship-application", handler.SubmitInternshipApplication)
	public.POST("/work-application", handler.SubmitWorkApplication)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relays a contact message to the studio and sends the sender a confirmation.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *SubmissionHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	h.submit(c, req.ToSubmission())
}

// SubmitQuote godoc
// @Summary      Submit Quote Request
// @Description  Relays a project quote request to the studio and sends the customer a confirmation.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        quote  body      domain.QuoteRequest  true  "Quote Request Data"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /quote [post]
func (h *SubmissionHandler) SubmitQuote(c *gin.Context) {
	var req domain.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	h.submit(c, req.ToSubmission())
}

// SubmitInternship godoc
// @Summary      Submit Internship Form (legacy)
// @Description  Relays a legacy internship application to HR and sends the applicant a confirmation.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        internship  body      domain.InternshipRequest  true  "Internship Form Data"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Failure      500         {object}  response.Response
// @Router       /internship [post]
func (h *SubmissionHandler) SubmitInternship(c *gin.Context) {
	var req domain.InternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	h.submit(c, req.ToSubmission())
}

// SubmitInternshipApplication godoc
// @Summary      Submit Internship Application
// @Description  Relays an internship application to HR and sends the applicant a confirmation.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        application  body      domain.InternshipApplicationRequest  true  "Internship Application Data"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /internship-application [post]
func (h *SubmissionHandler) SubmitInternshipApplication(c *gin.Context) {
	var req domain.InternshipApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	h.submit(c, req.ToSubmission())
}

// SubmitWorkApplication godoc
// @Summary      Submit Work Application
// @Description  Relays a work application to HR and sends the applicant a confirmation.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        application  body      domain.WorkApplicationRequest  true  "Work Application Data"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /work-application [post]
func (h *SubmissionHandler) SubmitWorkApplication(c *gin.Context) {
	var req domain.WorkApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	h.submit(c, req.ToSubmission())
}

// submit runs the shared workflow and maps its error taxonomy onto
// HTTP statuses: validation 400, configuration and transport 500.
func (h *SubmissionHandler) submit(c *gin.Context, sub *domain.FormSubmission) {
	result, err := h.submissionUC.Submit(c.Request.Context(), sub)
	if err != nil {
		var validationErr *domain.ValidationError
		var configErr *domain.ConfigurationError
		var transportErr *domain.TransportError
		switch {
		case errors.As(err, &validationErr):
			c.Error(apperror.BadRequest(validationErr.Reason))
		case errors.As(err, &configErr):
			c.Error(apperror.New(http.StatusInternalServerError, configErr.Error(), err))
		case errors.As(err, &transportErr):
			c.Error(apperror.New(http.StatusInternalServerError, transportErr.Error(), err))
		default:
			c.Error(apperror.Internal(err))
		}
		return
	}

	response.Success(c, http.StatusOK, result.Message, result.Data)
}
