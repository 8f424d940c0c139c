package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// BookHandler 图书HTTP处理器
// 写操作成功后返回最新的图书读模型
type BookHandler struct {
	books *appbook.UseCases
}

func NewBookHandler(books *appbook.UseCases) *BookHandler {
	return &BookHandler{books: books}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  按创建顺序返回全部图书
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=response.ListData{list=[]appbook.BookReadModel}}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.books.List.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithList(c, books, len(books))
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookReadModel}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	b, err := h.books.GetByID.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, b)
}

// CreateBook 新建图书
// @Summary      新建图书
// @Description  作者必须存在,ISBN全局唯一,至少一个分类
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=dto.IDResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未认证"
// @Failure      404 {object} response.Response "作者不存在"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.books.Create.Execute(c.Request.Context(), appbook.CreateBookRequest{
		AuthorID:      req.AuthorID,
		Title:         req.Title,
		ISBN:          req.ISBN,
		Summary:       req.Summary,
		PublishedYear: req.PublishedYear,
		PageCount:     req.PageCount,
		Genres:        req.Genres,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.IDResponse{ID: result.ID})
}

// ChangeTitle 修改书名
// @Summary      修改书名
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Param        request body dto.ChangeTitleRequest true "新书名"
// @Success      200 {object} response.Response{data=appbook.BookReadModel}
// @Router       /api/v1/books/{id}/title [patch]
func (h *BookHandler) ChangeTitle(c *gin.Context) {
	var req dto.ChangeTitleRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.books.ChangeTitle.Execute(c.Request.Context(), appbook.ChangeBookTitleRequest{
		BookID: c.Param("id"),
		Title:  req.Title,
	})
	h.respondWithBook(c, err)
}

// ChangeISBN 修改ISBN
// @Summary      修改ISBN
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Param        request body dto.ChangeISBNRequest true "新ISBN"
// @Success      200 {object} response.Response{data=appbook.BookReadModel}
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /api/v1/books/{id}/isbn [patch]
func (h *BookHandler) ChangeISBN(c *gin.Context) {
	var req dto.ChangeISBNRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.books.ChangeISBN.Execute(c.Request.Context(), appbook.ChangeBookISBNRequest{
		BookID: c.Param("id"),
		ISBN:   req.ISBN,
	})
	h.respondWithBook(c, err)
}

// ChangeSummary 修改简介
// @Summary      修改简介
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Param        request body dto.ChangeSummaryRequest true "新简介"
// @Success      200 {object} response.Response{data=appbook.BookReadModel}
// @Router       /api/v1/books/{id}/summary [patch]
func (h *BookHandler) ChangeSummary(c *gin.Context) {
	var req dto.ChangeSummaryRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.books.ChangeSummary.Execute(c.Request.Context(), appbook.ChangeBookSummaryRequest{
		BookID:  c.Param("id"),
		Summary: req.Summary,
	})
	h.respondWithBook(c, err)
}

// AddGenre 添加分类
// @Summary      添加分类
// @Description  分类名忽略大小写不可重复
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Param        request body dto.AddGenreRequest true "分类"
// @Success      200 {object} response.Response{data=appbook.BookReadModel}
// @Failure      409 {object} response.Response "分类已存在"
// @Router       /api/v1/books/{id}/genres [post]
func (h *BookHandler) AddGenre(c *gin.Context) {
	var req dto.AddGenreRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.books.AddGenre.Execute(c.Request.Context(), appbook.GenreRequest{
		BookID: c.Param("id"),
		Genre:  req.Genre,
	})
	h.respondWithBook(c, err)
}

// RemoveGenre 移除分类
// @Summary      移除分类
// @Description  不能移除最后一个分类
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Param        name path string true "分类名"
// @Success      200 {object} response.Response{data=appbook.BookReadModel}
// @Failure      409 {object} response.Response "分类不存在或为最后一个分类"
// @Router       /api/v1/books/{id}/genres/{name} [delete]
func (h *BookHandler) RemoveGenre(c *gin.Context) {
	err := h.books.RemoveGenre.Execute(c.Request.Context(), appbook.GenreRequest{
		BookID: c.Param("id"),
		Genre:  c.Param("name"),
	})
	h.respondWithBook(c, err)
}

// AddReview 添加书评
// @Summary      添加书评
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Param        request body dto.AddReviewRequest true "书评"
// @Success      201 {object} response.Response{data=dto.ReviewIDResponse}
// @Failure      400 {object} response.Response "评分或评论无效"
// @Router       /api/v1/books/{id}/reviews [post]
func (h *BookHandler) AddReview(c *gin.Context) {
	var req dto.AddReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.books.AddReview.Execute(c.Request.Context(), appbook.AddReviewRequest{
		BookID:  c.Param("id"),
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ReviewIDResponse{ReviewID: result.ReviewID})
}

// RemoveReview 删除书评
// @Summary      删除书评
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Param        reviewId path string true "书评ID"
// @Success      200 {object} response.Response{data=appbook.BookReadModel}
// @Failure      409 {object} response.Response "书评不存在"
// @Router       /api/v1/books/{id}/reviews/{reviewId} [delete]
func (h *BookHandler) RemoveReview(c *gin.Context) {
	err := h.books.RemoveReview.Execute(c.Request.Context(), appbook.RemoveReviewRequest{
		BookID:   c.Param("id"),
		ReviewID: c.Param("reviewId"),
	})
	h.respondWithBook(c, err)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.books.Delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *BookHandler) respondWithBook(c *gin.Context, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	b, err := h.books.GetByID.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, b)
}
