package server

import (
	"fmt"
	"mime/multipart"
	"strconv"
	"time"

	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

// PostResponse is a post with the owning user's public fields joined in.
type PostResponse struct {
	ID             uint      `json:"id"`
	Content        string    `json:"content"`
	Media          []string  `json:"media"`
	CreatedAt      time.Time `json:"created_at"`
	UserID         uint      `json:"userId"`
	Username       string    `json:"username"`
	ProfilePicture string    `json:"profilePicture"`
}

// CreatePost handles POST /create-post
// @Summary Create a post with up to 10 media attachments
// @Tags posts
// @Accept mpfd
// @Produce json
// @Success 201 {object} object{post=models.Post,imageUrls=[]string}
// @Failure 400 {object} models.ErrorResponse
// @Router /create-post [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		UserID  string `json:"userId" form:"userId"`
		Content string `json:"content" form:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID, err := strconv.ParseUint(req.UserID, 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid userId"))
	}

	var files []*multipart.FileHeader
	if form, formErr := c.MultipartForm(); formErr == nil && form != nil {
		files = form.File["media"]
	}
	if len(files) > s.config.MaxPostMediaFiles {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(fmt.Sprintf("Too many files (max %d)", s.config.MaxPostMediaFiles)))
	}

	// Independent blob uploads proceed concurrently and are joined before the
	// post is written; a single failure fails the request with no record kept.
	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(c.UserContext())
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			url, upErr := s.storeUpload(gctx, fh)
			if upErr != nil {
				return upErr
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	post, err := s.postService.Create(c.UserContext(), uint(userID), req.Content, urls)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"post":      post,
		"imageUrls": urls,
	})
}

// GetUserPosts handles GET /user-posts/:userId, newest first.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	posts, err := s.postService.ListByUser(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	out := make([]PostResponse, len(posts))
	for i, p := range posts {
		out[i] = PostResponse{
			ID:             p.ID,
			Content:        p.Content,
			Media:          p.Media,
			CreatedAt:      p.CreatedAt,
			UserID:         p.UserID,
			Username:       p.User.Username,
			ProfilePicture: p.User.ProfilePicture,
		}
	}
	return c.JSON(out)
}

// DeletePost handles DELETE /delete-post/:postId. Unknown ids succeed.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseIDParam(c, "postId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if err := s.postService.Delete(c.UserContext(), postID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}
