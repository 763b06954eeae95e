package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/WebCoreServices/customer-portal/internal/audit"
	"github.com/WebCoreServices/customer-portal/internal/auth"
	"github.com/WebCoreServices/customer-portal/internal/httperr"
	"github.com/WebCoreServices/customer-portal/internal/httpresp"
	"github.com/WebCoreServices/customer-portal/internal/models"
	"github.com/WebCoreServices/customer-portal/internal/repository"
	"github.com/WebCoreServices/customer-portal/internal/validators"
)

type CustomerHandler struct {
	customers *repository.CustomerRepository
	audit     *audit.Dispatcher
	log       *zap.Logger
}

func NewCustomerHandler(
	customers *repository.CustomerRepository,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		audit:     auditDispatcher,
		log:       log,
	}
}

type AddCustomerRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Birthday  string `json:"birthday"`
}

func (h *CustomerHandler) Add(c *gin.Context) {
	var req AddCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	var missing []string
	if req.ID == "" {
		missing = append(missing, "id")
	}
	if req.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if req.LastName == "" {
		missing = append(missing, "last_name")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Birthday == "" {
		missing = append(missing, "birthday")
	}
	if len(missing) > 0 {
		httperr.BadRequest(c, "fields required: "+strings.Join(missing, ", "))
		return
	}

	if !validators.IsValidName(req.FirstName) {
		httperr.BadRequest(c, "first_name should be 2-50 letters")
		return
	}
	if !validators.IsValidName(req.LastName) {
		httperr.BadRequest(c, "last_name should be 2-50 letters")
		return
	}
	if !validators.IsValidPhone(req.Phone) {
		httperr.BadRequest(c, "phone should be 7-15 digits")
		return
	}
	if !validators.IsValidBirthday(req.Birthday) {
		httperr.BadRequest(c, "birthday should be in YYYY-MM-DD format")
		return
	}

	exists, err := h.customers.Exists(c.Request.Context(), req.ID)
	if err != nil {
		h.log.Error("customer add: existence check failed", zap.Error(err))
		httperr.Internal(c, "server error")
		return
	}
	if exists {
		httperr.Conflict(c, "customer already exists")
		return
	}

	customer := models.Customer{
		ID:          auth.NewID(),
		CustomerID:  req.ID,
		Fingerprint: auth.CreateGUID(req.ID + req.Phone),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Email:       req.Email,
		Birthday:    req.Birthday,
	}

	if err := h.customers.Insert(c.Request.Context(), &customer); err != nil {
		if httperr.IsBusiness(err, repository.CodeDuplicate) {
			httperr.Conflict(c, "customer already exists")
			return
		}
		h.log.Error("customer add: insert failed", zap.String("customer_id", req.ID), zap.Error(err))
		httperr.Internal(c, "server error")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    "web",
		Action:   audit.ActionCustomerCreated,
		Entity:   "customer",
		EntityID: customer.CustomerID,
	})

	httpresp.OK(c, gin.H{
		"customer": gin.H{
			"id":         customer.CustomerID,
			"first_name": customer.FirstName,
			"last_name":  customer.LastName,
			"phone":      customer.Phone,
			"email":      customer.Email,
			"birthday":   customer.Birthday,
		},
	})
}

func (h *CustomerHandler) GetAll(c *gin.Context) {
	customers, err := h.customers.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error("customer list failed", zap.Error(err))
		httperr.Internal(c, "server error")
		return
	}

	httpresp.OK(c, gin.H{"customers": customers})
}
