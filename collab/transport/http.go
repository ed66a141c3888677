package transport

import (
	"net/http"
	"strconv"

	"github.com/MarisolRV/crossover/collab"
	"github.com/MarisolRV/crossover/internal"
	"github.com/MarisolRV/crossover/storage"
	"github.com/MarisolRV/crossover/transport"
	"github.com/gin-gonic/gin"
)

type Http struct {
	kind collab.Kind
	s    collab.Service
	up   storage.Uploader
}

// NewCollabHttp attaches one record kind's routes under its slug. Both
// kinds run through the exact same handlers; the Kind schema is the only
// thing that differs
func NewCollabHttp(kind collab.Kind, s collab.Service, up storage.Uploader, r *gin.Engine) {
	h := &Http{
		kind: kind,
		s:    s,
		up:   up,
	}

	group := r.Group("/" + kind.Slug)
	{
		group.GET("", h.listPage())
		group.GET("/all", h.list())
		group.GET("/"+kind.PrimaryRoute, h.searchPrimary())
		group.GET("/search_by_field", h.searchByField())
		group.GET("/by_date", h.listByDate())
		group.GET("/deleted", h.listDeleted())
		group.GET("/:id", h.get())
		group.POST("", h.create())
		group.POST("/upload", h.createWithImage())
		group.PUT("/:id", h.update())
		group.POST("/delete", h.delete())
	}
}

func (h *Http) listPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := h.s.List(c.Request.Context(), h.kind)
		if err != nil {
			c.Error(err)
			return
		}
		c.HTML(http.StatusOK, "records.html", gin.H{
			"records": records,
			"kind":    h.kind.Slug,
		})
	}
}

func (h *Http) list() gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := h.s.List(c.Request.Context(), h.kind)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, transport.HttpResponse{
			Success: true,
			Payload: records,
		})
	}
}

func (h *Http) searchPrimary() gin.HandlerFunc {
	return func(c *gin.Context) {
		value := c.Query("value")
		h.respondSearch(c, h.kind.PrimaryField, value)
	}
}

func (h *Http) searchByField() gin.HandlerFunc {
	return func(c *gin.Context) {
		field := c.Query("field")
		value := c.Query("value")
		h.respondSearch(c, field, value)
	}
}

func (h *Http) respondSearch(c *gin.Context, field string, value string) {
	records, err := h.s.SearchByField(c.Request.Context(), h.kind, field, value)
	if err != nil {
		c.Error(err)
		return
	}
	if len(records) == 0 {
		c.Error(internal.NewErrorf(internal.ErrorCodeNotFound, "No %ss found with %s containing '%s'", h.kind.Singular, field, value))
		return
	}
	c.JSON(http.StatusOK, transport.HttpResponse{
		Success: true,
		Payload: records,
	})
}

func (h *Http) listByDate() gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := h.s.ListByDate(c.Request.Context(), h.kind)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, transport.HttpResponse{
			Success: true,
			Payload: records,
		})
	}
}

func (h *Http) listDeleted() gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := h.s.ListDeleted(c.Request.Context(), h.kind)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, transport.HttpResponse{
			Success: true,
			Payload: records,
		})
	}
}

func (h *Http) get() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.Error(internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", internal.ErrInvalidID))
			return
		}
		found, err := h.s.Find(c.Request.Context(), h.kind, id)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, transport.HttpResponse{
			Success: true,
			Payload: found,
		})
	}
}

func (h *Http) create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var values map[string]string
		if err := c.ShouldBindJSON(&values); err != nil {
			c.Error(internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "Invalid payload provided"))
			return
		}
		created, err := h.s.Create(c.Request.Context(), h.kind, values)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, transport.HttpResponse{
			Success: true,
			Payload: created,
		})
	}
}

func (h *Http) createWithImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		values := map[string]string{}
		for _, f := range h.kind.Fields {
			if f.Name == collab.FieldImageURL {
				continue
			}
			values[f.Name] = c.PostForm(f.Name)
		}
		// Ingestion runs first; a rejected or failed upload aborts the
		// create before any row is written
		url, ok, err := h.ingestImage(c)
		if err != nil {
			c.Error(err)
			return
		}
		if !ok {
			c.Error(internal.NewErrorf(internal.ErrorCodeInvalidArgument, "An image file is required"))
			return
		}
		values[collab.FieldImageURL] = url

		created, err := h.s.Create(c.Request.Context(), h.kind, values)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, transport.HttpResponse{
			Success: true,
			Payload: gin.H{"id": created.ID},
		})
	}
}

func (h *Http) update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.Error(internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", internal.ErrInvalidID))
			return
		}
		// Only fields present and non-blank make it into the patch
		values := map[string]string{}
		for _, f := range h.kind.Fields {
			if f.Name == collab.FieldImageURL {
				continue
			}
			if v := c.PostForm(f.Name); v != "" {
				values[f.Name] = v
			}
		}
		url, ok, err := h.ingestImage(c)
		if err != nil {
			c.Error(err)
			return
		}
		if ok {
			values[collab.FieldImageURL] = url
		}

		updated, err := h.s.Update(c.Request.Context(), h.kind, id, values)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, transport.HttpResponse{
			Success: true,
			Payload: updated,
		})
	}
}

func (h *Http) delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.PostForm("id"))
		if err != nil {
			c.Error(internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", internal.ErrInvalidID))
			return
		}
		deleted, err := h.s.Delete(c.Request.Context(), h.kind, id)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, transport.HttpResponse{
			Success: true,
			Message: "Record deleted successfully",
			Payload: deleted,
		})
	}
}

// ingestImage pulls the optional image_file part off the request and runs
// it through image ingestion. ok reports whether a file was provided
func (h *Http) ingestImage(c *gin.Context) (url string, ok bool, err error) {
	fh, err := c.FormFile("image_file")
	if err != nil {
		return "", false, nil
	}
	f, err := fh.Open()
	if err != nil {
		return "", false, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to read uploaded file")
	}
	defer f.Close()

	url, err = storage.Ingest(c.Request.Context(), h.up, storage.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	})
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}
