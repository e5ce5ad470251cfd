package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	storedomain "github.com/streamrent/streamrent/internal/store/domain"
)

type createRechargeRequest struct {
	CustomerID      string    `json:"customerId"`
	CustomerName    string    `json:"customerName"`
	CustomerContact string    `json:"customerContact"`
	ProviderID      string    `json:"providerId"`
	ProviderName    string    `json:"providerName"`
	Cost            float64   `json:"cost"`
	Price           float64   `json:"price"`
	PaymentDate     time.Time `json:"paymentDate"`
	Details         string    `json:"details"`
}

type updateRechargeRequest struct {
	CustomerID      *string    `json:"customerId"`
	CustomerName    *string    `json:"customerName"`
	CustomerContact *string    `json:"customerContact"`
	ProviderID      *string    `json:"providerId"`
	ProviderName    *string    `json:"providerName"`
	Cost            *float64   `json:"cost"`
	Price           *float64   `json:"price"`
	PaymentDate     *time.Time `json:"paymentDate"`
	Details         *string    `json:"details"`
}

func (s *Server) CreateRecharge(c *gin.Context) {
	var req createRechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.store.AddRecharge(c.Request.Context(), storedomain.RechargeInput{
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		ProviderID:      req.ProviderID,
		ProviderName:    req.ProviderName,
		Cost:            req.Cost,
		Price:           req.Price,
		PaymentDate:     req.PaymentDate,
		Details:         req.Details,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListRecharges(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.store.ListRecharges()})
}

func (s *Server) GetRechargeByID(c *gin.Context) {
	recharge, ok := s.store.GetRechargeByID(c.Param("id"))
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": recharge})
}

func (s *Server) UpdateRecharge(c *gin.Context) {
	var req updateRechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	err := s.store.UpdateRecharge(c.Request.Context(), c.Param("id"), storedomain.RechargeUpdate{
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		ProviderID:      req.ProviderID,
		ProviderName:    req.ProviderName,
		Cost:            req.Cost,
		Price:           req.Price,
		PaymentDate:     req.PaymentDate,
		Details:         req.Details,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) DeleteRecharge(c *gin.Context) {
	if err := s.store.DeleteRecharge(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
