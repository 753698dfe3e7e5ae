package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexluc/lexluc-platform/internal/core/domain/blog"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/httpserver/helpers"
)

func (s *Server) createPost(c echo.Context) error {
	var req blog.CreatePostRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	p, err := s.blogSvc.CreatePost(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// listPublishedPosts serves both /blog and /blog/public.
func (s *Server) listPublishedPosts(c echo.Context) error {
	params, err := helpers.ListParamsFromQuery(c)
	if err != nil {
		return err
	}

	posts, err := s.blogSvc.ListPublished(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

func (s *Server) listAllPosts(c echo.Context) error {
	params, err := helpers.ListParamsFromQuery(c)
	if err != nil {
		return err
	}

	posts, err := s.blogSvc.ListAll(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

func (s *Server) getPost(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	p, err := s.blogSvc.GetPost(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) getPostBySlug(c echo.Context) error {
	p, err := s.blogSvc.GetPostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) updatePost(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	var req blog.UpdatePostRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	p, err := s.blogSvc.UpdatePost(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) deletePost(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	p, err := s.blogSvc.DeletePost(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}
