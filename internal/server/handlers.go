package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bft-labs/itemd/internal/domain"
	"github.com/bft-labs/itemd/internal/ports"
)

// listItems returns every stored item.
func (s *Server) listItems(c *gin.Context) {
	items, err := s.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

// createItem validates and stores a new item.
func (s *Server) createItem(c *gin.Context) {
	var item domain.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := s.svc.Create(c.Request.Context(), item)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// getItem returns one item by id.
func (s *Server) getItem(c *gin.Context) {
	item, err := s.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Item Not Found", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	c.JSON(http.StatusOK, item)
}

// updateItem overwrites an existing item.
func (s *Server) updateItem(c *gin.Context) {
	var item domain.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := s.svc.Update(c.Request.Context(), c.Param("id"), item)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Item Not Found", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteItem removes an item by id.
func (s *Server) deleteItem(c *gin.Context) {
	if err := s.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Item Not Found", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// processItems runs one batch over every stored item.
// Any batch failure maps to a uniform internal error; partial results are
// never exposed.
func (s *Server) processItems(c *gin.Context) {
	items, err := s.svc.ProcessAll(c.Request.Context())
	if err != nil {
		s.logger.Error("process request failed", ports.Err(err))
		respondError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}
