package transport

import (
	"net/http"

	"github.com/MarisolRV/crossover/collab"
	"github.com/gin-gonic/gin"
)

type Pages struct {
	s collab.Service
}

// NewPagesHttp attaches the server rendered pages that span both record
// kinds
func NewPagesHttp(s collab.Service, r *gin.Engine) {
	p := &Pages{
		s: s,
	}

	r.GET("/", p.home())
	r.GET("/show", p.show())
	r.GET("/deleted", p.deleted())
	r.GET("/create", p.static("create.html"))
	r.GET("/update", p.static("update.html"))
	r.GET("/query", p.static("query.html"))
	r.GET("/delete", p.static("delete.html"))
}

func (p *Pages) home() gin.HandlerFunc {
	return func(c *gin.Context) {
		cosmetics, err := p.s.List(c.Request.Context(), collab.Cosmetics)
		if err != nil {
			c.Error(err)
			return
		}
		games, err := p.s.List(c.Request.Context(), collab.Videogames)
		if err != nil {
			c.Error(err)
			return
		}
		c.HTML(http.StatusOK, "home.html", gin.H{
			"all_images": append(cosmetics, games...),
		})
	}
}

func (p *Pages) show() gin.HandlerFunc {
	return func(c *gin.Context) {
		cosmetics, err := p.s.List(c.Request.Context(), collab.Cosmetics)
		if err != nil {
			c.Error(err)
			return
		}
		games, err := p.s.List(c.Request.Context(), collab.Videogames)
		if err != nil {
			c.Error(err)
			return
		}
		c.HTML(http.StatusOK, "show.html", gin.H{
			"cosmetics": cosmetics,
			"games":     games,
		})
	}
}

func (p *Pages) deleted() gin.HandlerFunc {
	return func(c *gin.Context) {
		cosmetics, err := p.s.ListDeleted(c.Request.Context(), collab.Cosmetics)
		if err != nil {
			c.Error(err)
			return
		}
		games, err := p.s.ListDeleted(c.Request.Context(), collab.Videogames)
		if err != nil {
			c.Error(err)
			return
		}
		c.HTML(http.StatusOK, "deleted.html", gin.H{
			"deleted_cosmetics":  cosmetics,
			"deleted_videogames": games,
		})
	}
}

func (p *Pages) static(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, template, gin.H{})
	}
}
