package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"RBCMap-App/internal/application"
	"RBCMap-App/internal/domain/model"
	"RBCMap-App/internal/usecase"
)

// MapHandler 地図操作APIのハンドラー
type MapHandler struct {
	mapService application.MapService
}

// NewMapHandler 新しいMapHandlerインスタンスを作成
func NewMapHandler(mapService application.MapService) *MapHandler {
	return &MapHandler{
		mapService: mapService,
	}
}

// CreateSessionRequest POST /sessions のボディ
type CreateSessionRequest struct {
	Profile string `json:"profile"`
}

// GoToRequest POST /sessions/:id/goto のボディ
type GoToRequest struct {
	Column string `json:"column" binding:"required"`
	Row    string `json:"row" binding:"required"`
}

// ClickRequest POST /sessions/:id/click のボディ（ミニマップ上のピクセル座標）
type ClickRequest struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

// PositionRequest POST /sessions/:id/position のボディ（外部から報告された現在地）
type PositionRequest struct {
	Column *int `json:"column" binding:"required"`
	Row    *int `json:"row" binding:"required"`
}

// CreateSessionResponse セッション作成のレスポンス
type CreateSessionResponse struct {
	SessionID string               `json:"session_id"`
	Profile   string               `json:"profile"`
	Map       *model.MapProjection `json:"map"`
}

// RegisterRoutes ルーティングを登録する
func (h *MapHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/health", h.Health)
	r.GET("/streets", h.GetStreets)
	r.POST("/catalog/refresh", h.RefreshCatalog)

	sessions := r.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.DELETE("/:id", h.CloseSession)
	sessions.GET("/:id/map", h.GetMap)
	sessions.POST("/:id/zoom-in", h.ZoomIn)
	sessions.POST("/:id/zoom-out", h.ZoomOut)
	sessions.POST("/:id/goto", h.GoTo)
	sessions.POST("/:id/click", h.Click)
	sessions.POST("/:id/position", h.ReportPosition)
	sessions.POST("/:id/destination/toggle", h.ToggleDestination)
	sessions.GET("/:id/nearest/:category", h.GetNearest)
}

// Health GET /api/health
func (h *MapHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "RBCMap-App"})
}

// GetStreets GET /streets - 移動先選択用の通り一覧（座標順）
func (h *MapHandler) GetStreets(c *gin.Context) {
	c.JSON(http.StatusOK, h.mapService.Streets())
}

// RefreshCatalog POST /catalog/refresh - カタログの再読み込み
func (h *MapHandler) RefreshCatalog(c *gin.Context) {
	if err := h.mapService.RefreshCatalog(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "カタログの再読み込みに失敗しました",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}

// CreateSession POST /sessions
func (h *MapHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "リクエストの形式が正しくありません",
				"details": err.Error(),
			})
			return
		}
	}

	id, session := h.mapService.CreateSession(c.Request.Context(), req.Profile)
	c.JSON(http.StatusCreated, CreateSessionResponse{
		SessionID: id,
		Profile:   session.Profile(),
		Map:       session.Projection(),
	})
}

// CloseSession DELETE /sessions/:id
func (h *MapHandler) CloseSession(c *gin.Context) {
	if err := h.mapService.CloseSession(c.Param("id")); err != nil {
		h.sessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMap GET /sessions/:id/map
func (h *MapHandler) GetMap(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Projection())
}

// ZoomIn POST /sessions/:id/zoom-in
func (h *MapHandler) ZoomIn(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.ZoomIn())
}

// ZoomOut POST /sessions/:id/zoom-out
func (h *MapHandler) ZoomOut(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.ZoomOut())
}

// GoTo POST /sessions/:id/goto - 名前付き交差点へ移動
func (h *MapHandler) GoTo(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	var req GoToRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, session.GoTo(req.Column, req.Row))
}

// Click POST /sessions/:id/click - クリックしたセルへ移動
func (h *MapHandler) Click(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	var req ClickRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, session.ClickAt(*req.X, *req.Y))
}

// ReportPosition POST /sessions/:id/position - 外部からの現在地報告
func (h *MapHandler) ReportPosition(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	var req PositionRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, session.ReportPosition(*req.Column, *req.Row))
}

// ToggleDestination POST /sessions/:id/destination/toggle
// 保存に失敗しても状態は変わるため 200 で返し、警告を付ける
func (h *MapHandler) ToggleDestination(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	projection, err := session.ToggleDestination(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"map":     projection,
			"warning": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"map": projection})
}

// GetNearest GET /sessions/:id/nearest/:category - カテゴリの全POIを近い順に返す
func (h *MapHandler) GetNearest(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	category, err := model.ParseCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "カテゴリが正しくありません",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"results":  session.Nearest(category),
	})
}

func (h *MapHandler) session(c *gin.Context) (usecase.MapSessionUseCase, bool) {
	session, err := h.mapService.Session(c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return nil, false
	}
	return session, true
}

func (h *MapHandler) sessionError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "セッションが見つかりません",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "セッションの取得に失敗しました",
		"details": err.Error(),
	})
}

func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return false
	}
	return true
}
