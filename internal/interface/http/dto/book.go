package dto

// 请求DTO只做结构校验(JSON格式、类型),业务规则由领域值对象校验,
// 这样长度、范围等错误返回稳定的领域错误码

// CreateBookRequest 新建图书
type CreateBookRequest struct {
	AuthorID      string   `json:"author_id" binding:"required" example:"0190b5a2-7c1e-7d3a-9f00-1a2b3c4d5e6f"`
	Title         string   `json:"title" example:"1984"`
	ISBN          string   `json:"isbn" example:"978-0-452-28423-4"`
	Summary       string   `json:"summary" example:"A dystopian social science fiction novel."`
	PublishedYear int      `json:"published_year" example:"1949"`
	PageCount     int      `json:"page_count" example:"328"`
	Genres        []string `json:"genres" example:"Fiction,Sci-Fi"`
}

// ChangeTitleRequest 修改书名
type ChangeTitleRequest struct {
	Title string `json:"title" example:"Nineteen Eighty-Four"`
}

// ChangeISBNRequest 修改ISBN
type ChangeISBNRequest struct {
	ISBN string `json:"isbn" example:"9780452284234"`
}

// ChangeSummaryRequest 修改简介
type ChangeSummaryRequest struct {
	Summary string `json:"summary" example:"Winston Smith rebels against the Party."`
}

// AddGenreRequest 添加分类
type AddGenreRequest struct {
	Genre string `json:"genre" example:"Thriller"`
}

// AddReviewRequest 添加书评
type AddReviewRequest struct {
	Rating  int    `json:"rating" example:"5"`
	Comment string `json:"comment" example:"A chilling and prophetic masterpiece."`
}

// IDResponse 新建资源的ID
type IDResponse struct {
	ID string `json:"id" example:"0190b5a2-7c1e-7d3a-9f00-1a2b3c4d5e6f"`
}

// ReviewIDResponse 新建书评的ID
type ReviewIDResponse struct {
	ReviewID string `json:"review_id" example:"0190b5a2-7c1e-7d3a-9f00-1a2b3c4d5e70"`
}
