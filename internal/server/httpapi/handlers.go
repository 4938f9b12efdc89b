package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/peopled/peopled/internal/common"
)

func (s *Server) register(c *gin.Context) {
	var req registerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, err := s.auth.Register(c.Request.Context(), req.toModel(), req.Password)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": "email already registered"})
			return
		}
		s.logger.Error(c.Request.Context(), "registration failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, tokenResponse{AccessToken: token})
}

func (s *Server) login(c *gin.Context) {
	var req loginPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password produce the same response.
		if errors.Is(err, common.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token})
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.directory.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "listing users failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := s.userID(c)
	if !ok {
		return
	}

	user, err := s.directory.Get(c.Request.Context(), id)
	if err != nil {
		s.respondDirectoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) createUser(c *gin.Context) {
	var req userPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := s.directory.Create(c.Request.Context(), req.toModel())
	if err != nil {
		s.respondDirectoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := s.userID(c)
	if !ok {
		return
	}

	var req userPatchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := s.directory.Update(c.Request.Context(), id, req.toPatch())
	if err != nil {
		s.respondDirectoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := s.userID(c)
	if !ok {
		return
	}

	if err := s.directory.Delete(c.Request.Context(), id); err != nil {
		s.respondDirectoryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// userID parses the :id path parameter; on failure it writes the response
// and returns ok=false.
func (s *Server) userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return 0, false
	}
	return id, true
}

func (s *Server) respondDirectoryError(c *gin.Context, err error) {
	if errors.Is(err, common.ErrorNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}
	s.logger.Error(c.Request.Context(), "directory operation failed", "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
}
