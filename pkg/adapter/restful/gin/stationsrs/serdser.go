package stationsrs

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/epiclounge/loungeweb/pkg/adapter/restful/gin/serdser"
	"github.com/epiclounge/loungeweb/pkg/core/model"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/griduc"
)

type rawSceneReq struct {
	Width   float64 `form:"width" binding:"required,gt=0"`
	Height  float64 `form:"height" binding:"required,gt=0"`
	Hovered string  `form:"hovered"`
}

type sceneReq struct {
	Size    griduc.Size
	Hovered string
}

type rawHitReq struct {
	Width  float64  `form:"width" binding:"required,gt=0"`
	Height float64  `form:"height" binding:"required,gt=0"`
	X      *float64 `form:"x" binding:"required"`
	Y      *float64 `form:"y" binding:"required"`
}

type hitReq struct {
	Size griduc.Size
	X, Y float64
}

// DserSceneReq deserializes the canvas size and the optionally hovered
// station number from the query parameters.
func (rs *resource) DserSceneReq(c *gin.Context) *sceneReq {
	req := &rawSceneReq{}
	if ok := serdser.BindQuery(c, req); !ok {
		return nil
	}
	return &sceneReq{
		Size:    griduc.Size{Width: req.Width, Height: req.Height},
		Hovered: req.Hovered,
	}
}

// DserHitReq deserializes the canvas size and the pointer position
// from the query parameters. The coordinates are bound through
// pointers so zero, which is a valid edge position, is not mistaken
// for an absent field.
func (rs *resource) DserHitReq(c *gin.Context) *hitReq {
	req := &rawHitReq{}
	if ok := serdser.BindQuery(c, req); !ok {
		return nil
	}
	return &hitReq{
		Size: griduc.Size{Width: req.Width, Height: req.Height},
		X:    *req.X,
		Y:    *req.Y,
	}
}

// boardResp carries one board snapshot together with its fetch time,
// so clients can tell how stale the reported statuses are.
type boardResp struct {
	model.Board
	FetchedAt time.Time `json:"fetchedAt"`
}

// SerBoard serializes a board snapshot. A nil stations list is
// serialized as an empty array, so clients never branch on null.
func SerBoard(b model.Board, at time.Time) boardResp {
	if b.Stations == nil {
		b.Stations = []model.Station{}
	}
	return boardResp{Board: b, FetchedAt: at}
}
