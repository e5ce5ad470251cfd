package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	storedomain "github.com/streamrent/streamrent/internal/store/domain"
)

type createPaymentRequest struct {
	CustomerID string    `json:"customerId"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	Date       time.Time `json:"date"`
}

type updatePaymentRequest struct {
	CustomerID *string    `json:"customerId"`
	Amount     *float64   `json:"amount"`
	Method     *string    `json:"method"`
	Date       *time.Time `json:"date"`
}

func (s *Server) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.store.AddPayment(c.Request.Context(), storedomain.PaymentInput{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Method:     req.Method,
		Date:       req.Date,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPayments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.store.ListPayments()})
}

func (s *Server) GetPaymentByID(c *gin.Context) {
	payment, ok := s.store.GetPaymentByID(c.Param("id"))
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": payment})
}

func (s *Server) UpdatePayment(c *gin.Context) {
	var req updatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	err := s.store.UpdatePayment(c.Request.Context(), c.Param("id"), storedomain.PaymentUpdate{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Method:     req.Method,
		Date:       req.Date,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) DeletePayment(c *gin.Context) {
	if err := s.store.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
