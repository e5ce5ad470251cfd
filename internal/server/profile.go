package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	storedomain "github.com/streamrent/streamrent/internal/store/domain"
)

type createProfileRequest struct {
	Name           string    `json:"name"`
	CustomerID     string    `json:"customerId"`
	AccountID      string    `json:"accountId"`
	ProviderID     string    `json:"providerId"`
	Benefits       string    `json:"benefits"`
	ExpirationDate time.Time `json:"expirationDate"`
}

type updateProfileRequest struct {
	Name           *string    `json:"name"`
	CustomerID     *string    `json:"customerId"`
	AccountID      *string    `json:"accountId"`
	ProviderID     *string    `json:"providerId"`
	Benefits       *string    `json:"benefits"`
	ExpirationDate *time.Time `json:"expirationDate"`
}

func (s *Server) CreateProfile(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.store.AddProfile(c.Request.Context(), storedomain.ProfileInput{
		Name:           req.Name,
		CustomerID:     req.CustomerID,
		AccountID:      req.AccountID,
		ProviderID:     req.ProviderID,
		Benefits:       req.Benefits,
		ExpirationDate: req.ExpirationDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.store.ListProfiles()})
}

func (s *Server) GetProfileByID(c *gin.Context) {
	profile, ok := s.store.GetProfileByID(c.Param("id"))
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

func (s *Server) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	err := s.store.UpdateProfile(c.Request.Context(), c.Param("id"), storedomain.ProfileUpdate{
		Name:           req.Name,
		CustomerID:     req.CustomerID,
		AccountID:      req.AccountID,
		ProviderID:     req.ProviderID,
		Benefits:       req.Benefits,
		ExpirationDate: req.ExpirationDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) DeleteProfile(c *gin.Context) {
	if err := s.store.DeleteProfile(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
