package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	storedomain "github.com/streamrent/streamrent/internal/store/domain"
)

type createAccountRequest struct {
	ProviderID      string    `json:"providerId"`
	ProviderName    string    `json:"providerName"`
	ProviderContact string    `json:"providerContact"`
	Platform        string    `json:"platform"`
	Email           string    `json:"email"`
	Password        string    `json:"password"`
	Profiles        int       `json:"profiles"`
	Cost            float64   `json:"cost"`
	PaymentDate     time.Time `json:"paymentDate"`
	DaysAvailable   int       `json:"daysAvailable"`
	NextPaymentDate time.Time `json:"nextPaymentDate"`
	Status          string    `json:"status"`
}

type updateAccountRequest struct {
	ProviderID      *string    `json:"providerId"`
	ProviderName    *string    `json:"providerName"`
	ProviderContact *string    `json:"providerContact"`
	Platform        *string    `json:"platform"`
	Email           *string    `json:"email"`
	Password        *string    `json:"password"`
	Profiles        *int       `json:"profiles"`
	Cost            *float64   `json:"cost"`
	PaymentDate     *time.Time `json:"paymentDate"`
	DaysAvailable   *int       `json:"daysAvailable"`
	NextPaymentDate *time.Time `json:"nextPaymentDate"`
	Status          *string    `json:"status"`
}

func (s *Server) CreateAccount(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	status := storedomain.AccountStatus(req.Status)
	if status == "" {
		status = storedomain.AccountAvailable
	}

	resp, err := s.store.AddAccount(c.Request.Context(), storedomain.AccountInput{
		ProviderID:      req.ProviderID,
		ProviderName:    req.ProviderName,
		ProviderContact: req.ProviderContact,
		Platform:        storedomain.Platform(req.Platform),
		Email:           req.Email,
		Password:        req.Password,
		Profiles:        req.Profiles,
		Cost:            req.Cost,
		PaymentDate:     req.PaymentDate,
		DaysAvailable:   req.DaysAvailable,
		NextPaymentDate: req.NextPaymentDate,
		Status:          status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.store.ListAccounts()})
}

func (s *Server) ListAvailableAccounts(c *gin.Context) {
	platform := storedomain.Platform(c.Query("platform"))
	c.JSON(http.StatusOK, gin.H{"data": s.store.GetAvailableAccounts(platform)})
}

func (s *Server) GetAccountByID(c *gin.Context) {
	account, ok := s.store.GetAccountByID(c.Param("id"))
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": account})
}

func (s *Server) UpdateAccount(c *gin.Context) {
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	upd := storedomain.AccountUpdate{
		ProviderID:      req.ProviderID,
		ProviderName:    req.ProviderName,
		ProviderContact: req.ProviderContact,
		Email:           req.Email,
		Password:        req.Password,
		Profiles:        req.Profiles,
		Cost:            req.Cost,
		PaymentDate:     req.PaymentDate,
		DaysAvailable:   req.DaysAvailable,
		NextPaymentDate: req.NextPaymentDate,
	}
	if req.Platform != nil {
		platform := storedomain.Platform(*req.Platform)
		upd.Platform = &platform
	}
	if req.Status != nil {
		status := storedomain.AccountStatus(*req.Status)
		upd.Status = &status
	}

	if err := s.store.UpdateAccount(c.Request.Context(), c.Param("id"), upd); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) DeleteAccount(c *gin.Context) {
	if err := s.store.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) ListSalesByAccount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.store.GetSalesByAccountID(c.Param("id"))})
}
