package catalog

import (
	"errors"
	"net/http"

	"zaika/internal/ai"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service   *Service
	extractor ai.MenuExtractor
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service, extractor ai.MenuExtractor) *AdminHandler {
	return &AdminHandler{service: service, extractor: extractor}
}

// --------------------------------------------------
// Public catalog listing
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "could not load the catalog, please try again",
		})
		return
	}

	if products == nil {
		products = []Product{}
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "could not load the product, please try again",
		})
		return
	}

	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// Admin: create product
// --------------------------------------------------

type productRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	AIHint      string  `json:"aiHint"`
}

func (h *AdminHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p := &Product{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AIHint:      req.AIHint,
	}

	if err := h.service.CreateProduct(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// --------------------------------------------------
// Admin: update product (any field, order kept)
// --------------------------------------------------
func (h *AdminHandler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p := &Product{
		ID:          c.Param("id"),
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AIHint:      req.AIHint,
	}

	err := h.service.UpdateProduct(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// Admin: delete product
// --------------------------------------------------
func (h *AdminHandler) Delete(c *gin.Context) {
	err := h.service.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "could not delete the product, please try again",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// --------------------------------------------------
// Admin: upload product image
// --------------------------------------------------
func (h *AdminHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	p, err := h.service.AttachImage(
		c.Request.Context(),
		c.Param("id"),
		file,
		header.Filename,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// Admin: AI menu import (one image per request)
// --------------------------------------------------

type importRequest struct {
	ImageDataURI  string `json:"imageDataUri"`
	ContextPrompt string `json:"contextPrompt"`
}

func (h *AdminHandler) Import(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageDataURI == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageDataUri is required"})
		return
	}

	if _, _, err := ai.SplitDataURI(req.ImageDataURI); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	extracted, err := h.extractor.ExtractMenu(
		c.Request.Context(),
		req.ImageDataURI,
		req.ContextPrompt,
	)
	if err != nil {
		if ai.IsSafetyBlocked(err) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "the image was rejected by content safety checks",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "menu extraction failed, please try again: " + err.Error(),
		})
		return
	}

	if len(extracted) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"products": []Product{},
			"message":  "no products could be read from the image",
		})
		return
	}

	products, err := h.service.ImportExtracted(c.Request.Context(), extracted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "could not save the imported products, please try again",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"products": products,
		"message":  "menu imported",
	})
}
