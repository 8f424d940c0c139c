package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/bookshelf/internal/application/author"
	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	authors *appauthor.UseCases
	books   *appbook.UseCases
}

func NewAuthorHandler(authors *appauthor.UseCases, books *appbook.UseCases) *AuthorHandler {
	return &AuthorHandler{authors: authors, books: books}
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response{data=response.ListData{list=[]appauthor.AuthorReadModel}}
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.authors.List.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithList(c, authors, len(authors))
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path string true "作者ID"
// @Success      200 {object} response.Response{data=appauthor.AuthorReadModel}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	a, err := h.authors.GetByID.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, a)
}

// ListAuthorBooks 作者的图书
// @Summary      作者的图书
// @Description  作者不存在或没有图书时返回空列表
// @Tags         作者
// @Produce      json
// @Param        id path string true "作者ID"
// @Success      200 {object} response.Response{data=response.ListData{list=[]appbook.BookReadModel}}
// @Router       /api/v1/authors/{id}/books [get]
func (h *AuthorHandler) ListAuthorBooks(c *gin.Context) {
	books, err := h.books.ListByAuthor.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithList(c, books, len(books))
}

// CreateAuthor 新建作者
// @Summary      新建作者
// @Description  作者姓名全局唯一
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} response.Response{data=dto.IDResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "同名作者已存在"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.authors.Create.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Biography: req.Biography,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.IDResponse{ID: result.ID})
}

// ChangeName 修改作者姓名
// @Summary      修改作者姓名
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "作者ID"
// @Param        request body dto.ChangeAuthorNameRequest true "新姓名"
// @Success      200 {object} response.Response{data=appauthor.AuthorReadModel}
// @Failure      409 {object} response.Response "同名作者已存在"
// @Router       /api/v1/authors/{id}/name [patch]
func (h *AuthorHandler) ChangeName(c *gin.Context) {
	var req dto.ChangeAuthorNameRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.authors.ChangeName.Execute(c.Request.Context(), appauthor.ChangeAuthorNameRequest{
		AuthorID:  c.Param("id"),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	h.respondWithAuthor(c, err)
}

// ChangeBiography 修改作者简介
// @Summary      修改作者简介
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "作者ID"
// @Param        request body dto.ChangeBiographyRequest true "新简介"
// @Success      200 {object} response.Response{data=appauthor.AuthorReadModel}
// @Router       /api/v1/authors/{id}/biography [patch]
func (h *AuthorHandler) ChangeBiography(c *gin.Context) {
	var req dto.ChangeBiographyRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.authors.ChangeBiography.Execute(c.Request.Context(), appauthor.ChangeAuthorBiographyRequest{
		AuthorID:  c.Param("id"),
		Biography: req.Biography,
	})
	h.respondWithAuthor(c, err)
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Description  作者名下还有图书时不能删除
// @Tags         作者
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "作者ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "作者不存在"
// @Failure      409 {object} response.Response "作者仍有图书"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	if err := h.authors.Delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *AuthorHandler) respondWithAuthor(c *gin.Context, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	a, err := h.authors.GetByID.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, a)
}
