// internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10

	// batas atas ?page=, jauh di atas jumlah halaman yang mungkin
	MaxPage = 1_000_000
)

// Meta untuk response
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	Count      int   `json:"count"` // jumlah item di halaman ini
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	NextPage   *int  `json:"next_page,omitempty"`
	PrevPage   *int  `json:"prev_page,omitempty"`
	Window     []int `json:"window"` // nomor halaman untuk pager, 0 = "..."
}

// TotalPages = ceil(total / perPage). total 0 → 0 halaman.
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	return pages
}

// Paginate mengambil jendela halaman ke-page (1-indexed).
// Halaman di luar jangkauan menghasilkan slice kosong, bukan error.
func Paginate[T any](items []T, perPage, page int) []T {
	if perPage <= 0 || page < 1 {
		return []T{}
	}
	// cek dulu sebelum mengalikan: page raksasa bisa overflow
	if page-1 >= TotalPages(len(items), perPage) {
		return []T{}
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func BuildMeta(total, page, perPage, count int) Meta {
	totalPages := TotalPages(total, perPage)
	meta := Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		Count:      count,
		HasPrev:    page > 1,
		HasNext:    totalPages > 0 && page < totalPages,
		Window:     PageWindow(page, totalPages),
	}
	if meta.HasPrev {
		prev := page - 1
		meta.PrevPage = &prev
	}
	if meta.HasNext {
		next := page + 1
		meta.NextPage = &next
	}
	return meta
}

// PageWindow: 1 ... [cur-1] [cur] [cur+1] ... last. 0 menandai celah ("...").
// Dekat awal/akhir jendela diperlebar supaya selalu ada ±5 tombol.
func PageWindow(current, totalPages int) []int {
	if totalPages <= 1 {
		return []int{}
	}
	pages := []int{1}

	start := max(2, current-1)
	end := min(totalPages-1, current+1)
	if current <= 3 {
		end = min(4, totalPages-1)
	}
	if current >= totalPages-2 {
		start = max(2, totalPages-3)
	}

	if start > 2 {
		pages = append(pages, 0)
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	if end < totalPages-1 {
		pages = append(pages, 0)
	}
	return append(pages, totalPages)
}

// ParsePage membaca ?page= (default 1, minimal 1, maksimal MaxPage).
func ParsePage(c *fiber.Ctx) int {
	page := atoiDefault(strings.TrimSpace(c.Query("page")), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}
	return min(page, MaxPage)
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
