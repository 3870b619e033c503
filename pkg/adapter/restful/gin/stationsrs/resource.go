// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package stationsrs realizes the stations resource, allowing the
// station board and grid REST APIs to be accepted and delegated to the
// station board and grid use cases respectively.
package stationsrs

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/epiclounge/loungeweb/pkg/adapter/restful/gin/serdser"
	"github.com/epiclounge/loungeweb/pkg/core/model"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/boarduc"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/griduc"
)

type resource struct {
	board *boarduc.UseCase
	grid  *griduc.UseCase
}

// Register instantiates a resource adapting the station board and grid
// use case instances with the relevant REST APIs including:
//  1. GET request to /api/loungeweb/v1/stations
//     in order to read the latest station board snapshot.
//  2. POST request to /api/loungeweb/v1/stations/refresh
//     in order to re-fetch the board immediately (the manual refresh
//     control, which is the only offered retry).
//  3. GET request to /api/loungeweb/v1/stations/scene
//     in order to compute the glyph draw operations of the grid for a
//     given canvas size and hovered station.
//  4. GET request to /api/loungeweb/v1/stations/hit
//     in order to hit-test a pointer position against the grid.
func Register(
	r *gin.RouterGroup, board *boarduc.UseCase, grid *griduc.UseCase,
) {
	rs := &resource{board: board, grid: grid}
	r.GET("stations", rs.GetBoard)
	r.POST("stations/refresh", rs.RefreshBoard)
	r.GET("stations/scene", rs.GetScene)
	r.GET("stations/hit", rs.HitTest)
}

// snapshot returns the latest board snapshot, fetching one on demand
// when no poll cycle has succeeded yet. The bool result reports
// whether a board could be obtained; on false, the failure is already
// serialized.
func (rs *resource) snapshot(
	c *gin.Context,
) (model.Board, time.Time, bool) {
	if b, at, ok := rs.board.Snapshot(); ok {
		return b, at, true
	}
	b, err := rs.board.Refresh(c)
	if err != nil {
		serdser.SerErr(c, err)
		return model.Board{}, time.Time{}, false
	}
	_, at, _ := rs.board.Snapshot()
	return b, at, true
}

func (rs *resource) GetBoard(c *gin.Context) {
	b, at, ok := rs.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, SerBoard(b, at))
}

func (rs *resource) RefreshBoard(c *gin.Context) {
	b, err := rs.board.Refresh(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	_, at, _ := rs.board.Snapshot()
	c.JSON(http.StatusOK, SerBoard(b, at))
}

func (rs *resource) GetScene(c *gin.Context) {
	req := rs.DserSceneReq(c)
	if req == nil {
		return
	}
	b, _, ok := rs.snapshot(c)
	if !ok {
		return
	}
	ix := model.NewStationIndex(b.Stations)
	scene := rs.grid.Scene(req.Size, ix, req.Hovered, time.Now())
	c.JSON(http.StatusOK, gin.H{"glyphs": scene})
}

func (rs *resource) HitTest(c *gin.Context) {
	req := rs.DserHitReq(c)
	if req == nil {
		return
	}
	b, _, ok := rs.snapshot(c)
	if !ok {
		return
	}
	ix := model.NewStationIndex(b.Stations)
	station, hit := rs.grid.HitTest(req.Size, req.X, req.Y, ix)
	resp := gin.H{"hit": hit}
	if hit {
		resp["station"] = station
	}
	c.JSON(http.StatusOK, resp)
}
