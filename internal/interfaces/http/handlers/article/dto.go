package article

type CreateArticleRequest struct {
	Title  string   `json:"title" binding:"required"`
	Slug   string   `json:"slug" binding:"required"`
	Tags   []string `json:"tags"`
	Body   string   `json:"body"`
	Public bool     `json:"public"`
}

type UpdateArticleRequest struct {
	ID     uint     `json:"id" binding:"required"`
	Title  string   `json:"title" binding:"required"`
	Slug   string   `json:"slug" binding:"required"`
	Tags   []string `json:"tags"`
	Body   string   `json:"body"`
	Public bool     `json:"public"`
}

type DeleteArticleRequest struct {
	ID uint `json:"id" binding:"required"`
}
