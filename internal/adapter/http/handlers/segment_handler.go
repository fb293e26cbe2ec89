package handlers

import (
	"net/http"
	"strconv"

	"tradequote/internal/adapter/http/dto/response"
	"tradequote/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SegmentHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewSegmentHandler(uc usecase.ICatalogUseCase) *SegmentHandler {
	return &SegmentHandler{usecase: uc}
}

// ListSegments godoc
// @Summary      List trade segments
// @Description  With grouped=true the segments are nested under their construction phase.
// @Tags         segments
// @Produce      json
// @Param        grouped  query  bool  false  "Group by phase"
// @Success      200  {object}  response.SegmentsResponse
// @Router       /segments [get]
func (h *SegmentHandler) ListSegments(c *gin.Context) {
	grouped, _ := strconv.ParseBool(c.DefaultQuery("grouped", "false"))
	if grouped {
		phases, err := h.usecase.ListPhases(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.PhasesResponse{Phases: phases})
		return
	}

	segments, err := h.usecase.ListSegments(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SegmentsResponse{Segments: segments})
}

// GetSegment godoc
// @Summary      Get a trade segment
// @Tags         segments
// @Produce      json
// @Param        segment_id  path  string  true  "Segment ID"
// @Success      200  {object}  entities.Segment
// @Failure      404  {object}  pkg.HTTPError
// @Router       /segments/{segment_id} [get]
func (h *SegmentHandler) GetSegment(c *gin.Context) {
	seg, err := h.usecase.GetSegment(c.Request.Context(), c.Param("segment_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, seg)
}
