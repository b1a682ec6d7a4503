package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/healthybite-ma/storefront-backend/api/responses"
	"github.com/healthybite-ma/storefront-backend/api/validators"
	blogsvc "github.com/healthybite-ma/storefront-backend/internal/blog"
	pkgerrors "github.com/healthybite-ma/storefront-backend/pkg/errors"
	"github.com/healthybite-ma/storefront-backend/pkg/logger"
)

// ListBlogPosts serves published posts, newest first.
func ListBlogPosts(svc blogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := paginationParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// GetBlogPost serves a single post by id.
func GetBlogPost(svc blogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid post id"))
			return
		}

		post, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, post)
	}
}

type createPostRequest struct {
	Title       string     `json:"title" validate:"required"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content" validate:"required"`
	Author      string     `json:"author" validate:"required"`
	Image       string     `json:"image"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type updatePostRequest struct {
	Title       *string    `json:"title,omitempty"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Content     *string    `json:"content,omitempty"`
	Author      *string    `json:"author,omitempty"`
	Image       *string    `json:"image,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// AdminCreateBlogPost handles post creation. A missing publish date defaults
// to now.
func AdminCreateBlogPost(svc blogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createPostRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := blogsvc.CreatePostInput{
			Title:   payload.Title,
			Excerpt: payload.Excerpt,
			Content: payload.Content,
			Author:  payload.Author,
			Image:   payload.Image,
		}
		if payload.PublishedAt != nil {
			input.PublishedAt = *payload.PublishedAt
		}

		post, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, post)
	}
}

// AdminUpdateBlogPost applies a partial post update.
func AdminUpdateBlogPost(svc blogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid post id"))
			return
		}

		var payload updatePostRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		post, err := svc.Update(r.Context(), id, blogsvc.UpdatePostInput{
			Title:       payload.Title,
			Excerpt:     payload.Excerpt,
			Content:     payload.Content,
			Author:      payload.Author,
			Image:       payload.Image,
			PublishedAt: payload.PublishedAt,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, post)
	}
}

// AdminDeleteBlogPost removes a post.
func AdminDeleteBlogPost(svc blogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid post id"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
