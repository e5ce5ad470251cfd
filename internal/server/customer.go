package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	storedomain "github.com/streamrent/streamrent/internal/store/domain"
)

type createCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Country string `json:"country"`
	Comment string `json:"comment"`
	Status  string `json:"status"`
}

type updateCustomerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Country *string `json:"country"`
	Comment *string `json:"comment"`
	Status  *string `json:"status"`
}

func (s *Server) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	status := storedomain.CustomerStatus(req.Status)
	if status == "" {
		status = storedomain.CustomerActive
	}

	resp, err := s.store.AddCustomer(c.Request.Context(), storedomain.CustomerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Country: req.Country,
		Comment: req.Comment,
		Status:  status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.store.ListCustomers()})
}

func (s *Server) GetCustomerByID(c *gin.Context) {
	customer, ok := s.store.GetCustomerByID(c.Param("id"))
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customer})
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	upd := storedomain.CustomerUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Country: req.Country,
		Comment: req.Comment,
	}
	if req.Status != nil {
		status := storedomain.CustomerStatus(*req.Status)
		upd.Status = &status
	}

	if err := s.store.UpdateCustomer(c.Request.Context(), c.Param("id"), upd); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) DeleteCustomer(c *gin.Context) {
	if err := s.store.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) ListSalesByCustomer(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.store.GetSalesByCustomerID(c.Param("id"))})
}

func (s *Server) ListRechargesByCustomer(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.store.GetRechargesByCustomerID(c.Param("id"))})
}
