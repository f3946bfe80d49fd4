package server

import (
	"github.com/gin-gonic/gin"

	"github.com/Aidin1998/creatorhub/api/responses"
	"github.com/Aidin1998/creatorhub/pkg/models"
)

func (s *Server) handleCreateAsset(c *gin.Context) {
	var req models.CreateAssetRequest
	if !s.bindJSON(c, &req) {
		return
	}

	asset, err := s.assetsSvc.CreateAsset(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	responses.Created(c, models.CreateAssetResponse{Message: "success", Data: asset})
}

func (s *Server) handleListAssets(c *gin.Context) {
	list, err := s.assetsSvc.ListAssets(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	responses.OK(c, list)
}

// handleGetAsset responds with the asset or null
func (s *Server) handleGetAsset(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	asset, err := s.assetsSvc.GetAsset(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	responses.OK(c, asset)
}

func (s *Server) handleListAssetsByCreator(c *gin.Context) {
	creatorID, ok := pathID(c, "idCreator")
	if !ok {
		return
	}

	list, err := s.assetsSvc.ListAssetsByCreator(c.Request.Context(), creatorID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	responses.OK(c, list)
}
