package rest

import (
	"net/http"

	"github.com/gamehub-br/server/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogHandler handles the record-management endpoints for
// developers, publishers, genres and tags.
type CatalogHandler struct {
	db *gorm.DB
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

type studioRequest struct {
	Name    string `json:"name"    binding:"required,min=1,max=128"`
	Country string `json:"country" binding:"max=64"`
	Website string `json:"website" binding:"max=255"`
}

type nameRequest struct {
	Name string `json:"name" binding:"required,min=1,max=64"`
}

// ---- Developers ----

// ListDevelopers handles GET /api/developers.
func (h *CatalogHandler) ListDevelopers(c *gin.Context) {
	var devs []model.Developer
	if err := h.db.Find(&devs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"developers": devs})
}

// GetDeveloper handles GET /api/developers/:id.
func (h *CatalogHandler) GetDeveloper(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var dev model.Developer
	if err := h.db.First(&dev, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "developer not found"})
		return
	}
	c.JSON(http.StatusOK, dev)
}

// CreateDeveloper handles POST /api/developers.
func (h *CatalogHandler) CreateDeveloper(c *gin.Context) {
	var req studioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dev := model.Developer{Name: req.Name, Country: req.Country, Website: req.Website}
	if err := h.db.Create(&dev).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, dev)
}

// UpdateDeveloper handles PUT /api/developers/:id.
func (h *CatalogHandler) UpdateDeveloper(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req studioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var dev model.Developer
	if err := h.db.First(&dev, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "developer not found"})
		return
	}
	dev.Name, dev.Country, dev.Website = req.Name, req.Country, req.Website
	if err := h.db.Save(&dev).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dev)
}

// DeleteDeveloper handles DELETE /api/developers/:id.
func (h *CatalogHandler) DeleteDeveloper(c *gin.Context) {
	h.deleteByID(c, &model.Developer{}, "developer")
}

// ---- Publishers ----

// ListPublishers handles GET /api/publishers.
func (h *CatalogHandler) ListPublishers(c *gin.Context) {
	var pubs []model.Publisher
	if err := h.db.Find(&pubs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publishers": pubs})
}

// GetPublisher handles GET /api/publishers/:id.
func (h *CatalogHandler) GetPublisher(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var pub model.Publisher
	if err := h.db.First(&pub, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "publisher not found"})
		return
	}
	c.JSON(http.StatusOK, pub)
}

// CreatePublisher handles POST /api/publishers.
func (h *CatalogHandler) CreatePublisher(c *gin.Context) {
	var req studioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pub := model.Publisher{Name: req.Name, Country: req.Country, Website: req.Website}
	if err := h.db.Create(&pub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, pub)
}

// UpdatePublisher handles PUT /api/publishers/:id.
func (h *CatalogHandler) UpdatePublisher(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req studioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var pub model.Publisher
	if err := h.db.First(&pub, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "publisher not found"})
		return
	}
	pub.Name, pub.Country, pub.Website = req.Name, req.Country, req.Website
	if err := h.db.Save(&pub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, pub)
}

// DeletePublisher handles DELETE /api/publishers/:id.
func (h *CatalogHandler) DeletePublisher(c *gin.Context) {
	h.deleteByID(c, &model.Publisher{}, "publisher")
}

// ---- Genres ----

// ListGenres handles GET /api/genres.
func (h *CatalogHandler) ListGenres(c *gin.Context) {
	var genres []model.Genre
	if err := h.db.Find(&genres).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"genres": genres})
}

// GetGenre handles GET /api/genres/:id.
func (h *CatalogHandler) GetGenre(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var genre model.Genre
	if err := h.db.First(&genre, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "genre not found"})
		return
	}
	c.JSON(http.StatusOK, genre)
}

// CreateGenre handles POST /api/genres.
func (h *CatalogHandler) CreateGenre(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	genre := model.Genre{Name: req.Name}
	if err := h.db.Create(&genre).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "genre already exists"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, genre)
}

// UpdateGenre handles PUT /api/genres/:id.
func (h *CatalogHandler) UpdateGenre(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var genre model.Genre
	if err := h.db.First(&genre, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "genre not found"})
		return
	}
	genre.Name = req.Name
	if err := h.db.Save(&genre).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "genre already exists"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, genre)
}

// DeleteGenre handles DELETE /api/genres/:id.
func (h *CatalogHandler) DeleteGenre(c *gin.Context) {
	h.deleteByID(c, &model.Genre{}, "genre")
}

// ---- Tags ----

// ListTags handles GET /api/tags.
func (h *CatalogHandler) ListTags(c *gin.Context) {
	var tags []model.Tag
	if err := h.db.Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// GetTag handles GET /api/tags/:id.
func (h *CatalogHandler) GetTag(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var tag model.Tag
	if err := h.db.First(&tag, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
		return
	}
	c.JSON(http.StatusOK, tag)
}

// CreateTag handles POST /api/tags.
func (h *CatalogHandler) CreateTag(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tag := model.Tag{Name: req.Name}
	if err := h.db.Create(&tag).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "tag already exists"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// UpdateTag handles PUT /api/tags/:id.
func (h *CatalogHandler) UpdateTag(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var tag model.Tag
	if err := h.db.First(&tag, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
		return
	}
	tag.Name = req.Name
	if err := h.db.Save(&tag).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "tag already exists"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, tag)
}

// DeleteTag handles DELETE /api/tags/:id.
func (h *CatalogHandler) DeleteTag(c *gin.Context) {
	h.deleteByID(c, &model.Tag{}, "tag")
}

func (h *CatalogHandler) deleteByID(c *gin.Context, entity interface{}, name string) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res := h.db.Delete(entity, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": name + " not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": name + " deleted"})
}
