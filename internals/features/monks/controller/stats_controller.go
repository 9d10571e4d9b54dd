package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"monges_backend/internals/features/monks/dto"
	"monges_backend/internals/features/monks/query"
	"monges_backend/internals/features/monks/stats"
	helper "monges_backend/internals/helpers"
)

/* GET /api/monks/stats/:field?top=8&q=...&f.<key>=...  (atas hasil filter, bukan halaman) */
func (ctrl *MonkController) GetStats(c *fiber.Ctx) error {
	records, err := ctrl.Snapshot.Records(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	view := viewFromQuery(c)
	filtered := query.Filter(records, view.Term(), view.Predicates())

	field := c.Params("field")
	buckets, err := stats.GroupCount(filtered, field)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	topN := ctrl.TopN
	if n, err := strconv.Atoi(c.Query("top")); err == nil && n >= 0 {
		topN = n
	}

	return helper.JsonOK(c, "ok", dto.StatsResponse{
		Field:   field,
		Total:   len(filtered),
		Buckets: toBucketDTOs(buckets),
		Top:     toBucketDTOs(stats.TopN(buckets, topN)),
	})
}

/* GET /api/monks/summary?q=...&f.<key>=... */
func (ctrl *MonkController) GetSummary(c *fiber.Ctx) error {
	records, err := ctrl.Snapshot.Records(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	view := viewFromQuery(c)
	filtered := query.Filter(records, view.Term(), view.Predicates())
	return helper.JsonOK(c, "ok", stats.Summarize(filtered))
}

func toBucketDTOs(in []stats.Bucket) []dto.BucketDTO {
	out := make([]dto.BucketDTO, 0, len(in))
	for _, b := range in {
		out = append(out, dto.BucketDTO{Label: b.Label, Count: b.Count})
	}
	return out
}
