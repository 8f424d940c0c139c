package dto

// CreateAuthorRequest 新建作者
type CreateAuthorRequest struct {
	FirstName string `json:"first_name" example:"George"`
	LastName  string `json:"last_name" example:"Orwell"`
	Biography string `json:"biography" example:"English novelist and essayist."`
}

// ChangeAuthorNameRequest 修改作者姓名
type ChangeAuthorNameRequest struct {
	FirstName string `json:"first_name" example:"Eric"`
	LastName  string `json:"last_name" example:"Blair"`
}

// ChangeBiographyRequest 修改作者简介
type ChangeBiographyRequest struct {
	Biography string `json:"biography" example:"Novelist, essayist and critic."`
}
