package request

import "airport-booking/pkg/utils"

type PaginatedRequest struct {
	Page     int `json:"page" validate:"min=1"`
	PageSize int `json:"page_size" validate:"min=1"`
}

// Normalize fills unset values and caps the page size at maxSize.
func (p PaginatedRequest) Normalize(defaultSize, maxSize int) PaginatedRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	p.PageSize = utils.ClampPageSize(p.PageSize, defaultSize, maxSize)
	return p
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.PageSize)
}

func (p PaginatedRequest) Limit() int {
	return p.PageSize
}
