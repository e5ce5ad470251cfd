package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	storedomain "github.com/streamrent/streamrent/internal/store/domain"
)

type createProviderRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type updateProviderRequest struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
}

func (s *Server) CreateProvider(c *gin.Context) {
	var req createProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.store.AddProvider(c.Request.Context(), storedomain.ProviderInput{
		Name:    req.Name,
		Contact: req.Contact,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.store.ListProviders()})
}

func (s *Server) GetProviderByID(c *gin.Context) {
	provider, ok := s.store.GetProviderByID(c.Param("id"))
	if !ok {
		AbortWithError(c, ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": provider})
}

func (s *Server) UpdateProvider(c *gin.Context) {
	var req updateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	err := s.store.UpdateProvider(c.Request.Context(), c.Param("id"), storedomain.ProviderUpdate{
		Name:    req.Name,
		Contact: req.Contact,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) DeleteProvider(c *gin.Context) {
	if err := s.store.DeleteProvider(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
