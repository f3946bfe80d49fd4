package server

import (
	"github.com/gin-gonic/gin"

	"github.com/Aidin1998/creatorhub/api/responses"
	"github.com/Aidin1998/creatorhub/pkg/models"
)

// handleRegisterCreator handles creator registration
func (s *Server) handleRegisterCreator(c *gin.Context) {
	var req models.RegisterRequest
	if !s.bindJSON(c, &req) {
		return
	}

	creator, err := s.creatorsSvc.Register(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	responses.OK(c, models.RegisterResponse{ID: creator.ID, Name: creator.Name})
}

// handleGetCreator responds with the creator or null
func (s *Server) handleGetCreator(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	creator, err := s.creatorsSvc.GetProfile(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	responses.OK(c, creator)
}

// handleUpdateCreator handles profile updates
func (s *Server) handleUpdateCreator(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if !s.bindJSON(c, &req) {
		return
	}

	creator, err := s.creatorsSvc.UpdateProfile(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	responses.OK(c, models.RegisterResponse{ID: creator.ID, Name: creator.Name})
}

// handleLoginCreator handles login by username and wallet address
func (s *Server) handleLoginCreator(c *gin.Context) {
	var req models.LoginRequest
	if !s.bindJSON(c, &req) {
		return
	}

	resp, err := s.creatorsSvc.Login(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	responses.OK(c, resp)
}
