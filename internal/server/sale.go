package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	storedomain "github.com/streamrent/streamrent/internal/store/domain"
)

type createSaleRequest struct {
	Type            string    `json:"type"`
	CustomerID      string    `json:"customerId"`
	CustomerName    string    `json:"customerName"`
	CustomerContact string    `json:"customerContact"`
	AccountID       string    `json:"accountId"`
	Platform        string    `json:"platform"`
	Price           float64   `json:"price"`
	PaymentDate     time.Time `json:"paymentDate"`
	ExpiryDate      time.Time `json:"expiryDate"`
	Days            int       `json:"days"`
	ProfileName     string    `json:"profileName"`
	ProfilePin      string    `json:"profilePin"`
	PaymentMethod   string    `json:"paymentMethod"`
}

type updateSaleRequest struct {
	Type            *string    `json:"type"`
	CustomerID      *string    `json:"customerId"`
	CustomerName    *string    `json:"customerName"`
	CustomerContact *string    `json:"customerContact"`
	AccountID       *string    `json:"accountId"`
	Platform        *string    `json:"platform"`
	Price           *float64   `json:"price"`
	PaymentDate     *time.Time `json:"paymentDate"`
	ExpiryDate      *time.Time `json:"expiryDate"`
	Days            *int       `json:"days"`
	ProfileName     *string    `json:"profileName"`
	ProfilePin      *string    `json:"profilePin"`
	PaymentMethod   *string    `json:"paymentMethod"`
	Status          *string    `json:"status"`
}

type renewSaleRequest struct {
	Amount          float64   `json:"amount"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentDate     time.Time `json:"paymentDate"`
	Days            int       `json:"days"`
	NextPaymentDate time.Time `json:"nextPaymentDate"`
}

func (s *Server) CreateSale(c *gin.Context) {
	var req createSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.store.AddSale(c.Request.Context(), storedomain.SaleInput{
		Type:            storedomain.SaleType(req.Type),
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		AccountID:       req.AccountID,
		Platform:        storedomain.Platform(req.Platform),
		Price:           req.Price,
		PaymentDate:     req.PaymentDate,
		ExpiryDate:      req.ExpiryDate,
		Days:            req.Days,
		ProfileName:     req.ProfileName,
		ProfilePin:      req.ProfilePin,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListSales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.store.ListSales()})
}

// ListSalesExpiring matches active sales expiring exactly on the given day
// (query parameter date=YYYY-MM-DD).
func (s *Server) ListSalesExpiring(c *gin.Context) {
	raw := c.Query("date")
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		AbortWithError(c, newValidationError("date", "invalid_date", "expected YYYY-MM-DD"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s.store.GetSalesExpiringOn(date)})
}

func (s *Server) GetSaleByID(c *gin.Context) {
	sale, ok := s.store.GetSaleByID(c.Param("id"))
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sale})
}

func (s *Server) UpdateSale(c *gin.Context) {
	var req updateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	upd := storedomain.SaleUpdate{
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		AccountID:       req.AccountID,
		Price:           req.Price,
		PaymentDate:     req.PaymentDate,
		ExpiryDate:      req.ExpiryDate,
		Days:            req.Days,
		ProfileName:     req.ProfileName,
		ProfilePin:      req.ProfilePin,
		PaymentMethod:   req.PaymentMethod,
	}
	if req.Type != nil {
		saleType := storedomain.SaleType(*req.Type)
		upd.Type = &saleType
	}
	if req.Platform != nil {
		platform := storedomain.Platform(*req.Platform)
		upd.Platform = &platform
	}
	if req.Status != nil {
		status := storedomain.SaleStatus(*req.Status)
		upd.Status = &status
	}

	if err := s.store.UpdateSale(c.Request.Context(), c.Param("id"), upd); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) CancelSale(c *gin.Context) {
	if err := s.store.CancelSale(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) RenewSale(c *gin.Context) {
	var req renewSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	err := s.store.RenewSale(c.Request.Context(), c.Param("id"), storedomain.RenewalInput{
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		PaymentDate:     req.PaymentDate,
		Days:            req.Days,
		NextPaymentDate: req.NextPaymentDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
