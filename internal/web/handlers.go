package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todoweb/internal/app"
)

const pageTitle = "My Tasks"

// pageData is the template input for index.html.
type pageData struct {
	Title        string
	View         app.View
	Draft        string
	EmptyMessage string
}

// Web handlers

func (s *Server) handleIndex(c *gin.Context) {
	s.renderIndex(c, http.StatusOK, "")
}

func (s *Server) renderIndex(c *gin.Context, status int, draft string) {
	c.HTML(status, "index.html", pageData{
		Title:        pageTitle,
		View:         s.root.List.Snapshot(),
		Draft:        draft,
		EmptyMessage: app.EmptyMessage,
	})
}

func (s *Server) handleCreate(c *gin.Context) {
	form := s.root.NewForm()
	form.SetDraft(c.PostForm("title"))

	err := form.Submit(c.Request.Context())
	switch {
	case err == nil, errors.Is(err, app.ErrEmptyTitle):
		c.Redirect(http.StatusSeeOther, "/")
	default:
		s.renderIndex(c, http.StatusBadGateway, form.Draft())
	}
}

func (s *Server) handleToggle(c *gin.Context) {
	id := c.Param("id")
	completed, ok := s.currentCompleted(id, c.PostForm("completed"))
	if ok {
		// Failures are shown through the list error on the next render.
		_, _ = s.root.List.Toggle(c.Request.Context(), id, completed)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleDelete(c *gin.Context) {
	_ = s.root.List.Delete(c.Request.Context(), c.Param("id"))
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleRefresh(c *gin.Context) {
	_ = s.root.Mount(c.Request.Context())
	c.Redirect(http.StatusSeeOther, "/")
}

// API handlers

type createRequest struct {
	Title string `json:"title"`
}

type toggleRequest struct {
	Completed *bool `json:"completed"`
}

func (s *Server) handleAPIList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"state":   s.root.List.Snapshot(),
	})
}

func (s *Server) handleAPICreate(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	form := s.root.NewForm()
	form.SetDraft(req.Title)
	if err := form.Submit(c.Request.Context()); err != nil {
		if errors.Is(err, app.ErrEmptyTitle) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   app.MsgCreateFailed,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"todo":    form.LastCreated(),
	})
}

func (s *Server) handleAPIToggle(c *gin.Context) {
	id := c.Param("id")

	var req toggleRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "invalid request body",
			})
			return
		}
	}

	var completed bool
	if req.Completed != nil {
		completed = *req.Completed
	} else {
		task, ok := s.root.List.Find(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "task not found",
			})
			return
		}
		completed = task.Completed
	}

	task, err := s.root.List.Toggle(c.Request.Context(), id, completed)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   app.MsgToggleFailed,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"todo":    task,
	})
}

func (s *Server) handleAPIDelete(c *gin.Context) {
	if err := s.root.List.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   app.MsgDeleteFailed,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// currentCompleted returns the completed flag the page showed for id, falling
// back to the list's record when the form value is missing or malformed.
func (s *Server) currentCompleted(id, value string) (bool, bool) {
	if b, err := strconv.ParseBool(value); err == nil {
		return b, true
	}
	task, ok := s.root.List.Find(id)
	return task.Completed, ok
}
