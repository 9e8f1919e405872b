package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gamehub-br/server/cache"
	"github.com/gamehub-br/server/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TitleHandler handles title REST endpoints, including genre/tag links.
type TitleHandler struct {
	db    *gorm.DB
	cache cache.Cache
}

// NewTitleHandler creates a new TitleHandler.
func NewTitleHandler(db *gorm.DB, c cache.Cache) *TitleHandler {
	return &TitleHandler{db: db, cache: c}
}

const titleCacheTTL = 5 * time.Minute

func titleCacheKey(id int64) string {
	return fmt.Sprintf("title:%d", id)
}

// List handles GET /api/titles. An optional ?q= filters by substring
// on the name (plain LIKE, no ranking).
func (h *TitleHandler) List(c *gin.Context) {
	q := h.db.Model(&model.Title{})
	if search := c.Query("q"); search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	var titles []model.Title
	if err := q.Find(&titles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"titles": titles})
}

// Get handles GET /api/titles/:id. The detail is cached; catalog writes
// invalidate the entry.
func (h *TitleHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if cached, err := h.cache.Get(ctx, titleCacheKey(id)); err == nil {
		var title model.Title
		if json.Unmarshal([]byte(cached), &title) == nil {
			c.JSON(http.StatusOK, title)
			return
		}
	}

	var title model.Title
	if err := h.db.First(&title, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "title not found"})
		return
	}
	if raw, err := json.Marshal(title); err == nil {
		_ = h.cache.Set(ctx, titleCacheKey(id), string(raw), titleCacheTTL)
	}
	c.JSON(http.StatusOK, title)
}

type titleRequest struct {
	Name        string `json:"name"         binding:"required,min=1,max=128"`
	Description string `json:"description"`
	Price       int64  `json:"price"        binding:"min=0"`
	ReleasedAt  string `json:"released_at"`
	DeveloperID int64  `json:"developer_id" binding:"required"`
	PublisherID int64  `json:"publisher_id" binding:"required"`
}

func (r *titleRequest) releaseDate() (time.Time, error) {
	if r.ReleasedAt == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", r.ReleasedAt)
}

// Create handles POST /api/titles.
func (h *TitleHandler) Create(c *gin.Context) {
	var req titleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	released, err := req.releaseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "released_at must be YYYY-MM-DD"})
		return
	}

	var count int64
	h.db.Model(&model.Developer{}).Where("id = ?", req.DeveloperID).Count(&count)
	if count == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "developer not found"})
		return
	}
	h.db.Model(&model.Publisher{}).Where("id = ?", req.PublisherID).Count(&count)
	if count == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publisher not found"})
		return
	}

	title := model.Title{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ReleasedAt:  released,
		DeveloperID: req.DeveloperID,
		PublisherID: req.PublisherID,
	}
	if err := h.db.Create(&title).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, title)
}

// Update handles PUT /api/titles/:id.
func (h *TitleHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req titleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	released, err := req.releaseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "released_at must be YYYY-MM-DD"})
		return
	}

	var title model.Title
	if err := h.db.First(&title, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "title not found"})
		return
	}
	title.Name = req.Name
	title.Description = req.Description
	title.Price = req.Price
	if !released.IsZero() {
		title.ReleasedAt = released
	}
	title.DeveloperID = req.DeveloperID
	title.PublisherID = req.PublisherID

	if err := h.db.Save(&title).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	_ = h.cache.Del(c.Request.Context(), titleCacheKey(id))
	c.JSON(http.StatusOK, title)
}

// Delete handles DELETE /api/titles/:id.
func (h *TitleHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	res := h.db.Delete(&model.Title{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "title not found"})
		return
	}
	_ = h.cache.Del(c.Request.Context(), titleCacheKey(id))
	c.JSON(http.StatusOK, gin.H{"message": "title deleted"})
}

// ---- Genre links ----

type linkGenreRequest struct {
	GenreID int64 `json:"genre_id" binding:"required"`
}

// ListGenres handles GET /api/titles/:id/genres.
func (h *TitleHandler) ListGenres(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var genres []model.Genre
	err := h.db.Model(&model.Genre{}).
		Joins("JOIN title_genres ON title_genres.genre_id = genres.id").
		Where("title_genres.title_id = ?", id).
		Find(&genres).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"genres": genres})
}

// AddGenre handles POST /api/titles/:id/genres.
func (h *TitleHandler) AddGenre(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req linkGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	link := model.TitleGenre{TitleID: id, GenreID: req.GenreID}
	if err := h.db.Create(&link).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "genre already linked"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, link)
}

// RemoveGenre handles DELETE /api/titles/:id/genres/:genreId.
func (h *TitleHandler) RemoveGenre(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	genreID, ok := paramID(c, "genreId")
	if !ok {
		return
	}
	res := h.db.Where("title_id = ? AND genre_id = ?", id, genreID).Delete(&model.TitleGenre{})
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "genre unlinked"})
}

// ---- Tag links ----

type linkTagRequest struct {
	TagID int64 `json:"tag_id" binding:"required"`
}

// ListTags handles GET /api/titles/:id/tags.
func (h *TitleHandler) ListTags(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var tags []model.Tag
	err := h.db.Model(&model.Tag{}).
		Joins("JOIN title_tags ON title_tags.tag_id = tags.id").
		Where("title_tags.title_id = ?", id).
		Find(&tags).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// AddTag handles POST /api/titles/:id/tags.
func (h *TitleHandler) AddTag(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req linkTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	link := model.TitleTag{TitleID: id, TagID: req.TagID}
	if err := h.db.Create(&link).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "tag already linked"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, link)
}

// RemoveTag handles DELETE /api/titles/:id/tags/:tagId.
func (h *TitleHandler) RemoveTag(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	tagID, ok := paramID(c, "tagId")
	if !ok {
		return
	}
	res := h.db.Where("title_id = ? AND tag_id = ?", id, tagID).Delete(&model.TitleTag{})
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tag unlinked"})
}
